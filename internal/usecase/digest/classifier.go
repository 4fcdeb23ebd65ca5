package digest

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

// Category is the kind of action a single sentence implies.
type Category int

const (
	CategoryNone Category = iota
	CategoryObligation
	CategoryFutureIntent
	CategoryRecommendation
	CategoryTask
	CategoryFollowUp
	CategoryScheduling
)

var categoryNames = map[Category]string{
	CategoryNone:           "none",
	CategoryObligation:     "obligation",
	CategoryFutureIntent:   "future-intent",
	CategoryRecommendation: "recommendation",
	CategoryTask:           "task",
	CategoryFollowUp:       "follow-up",
	CategoryScheduling:     "scheduling",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// NoActionRequired is the breakdown entry for a sentence with no action.
const NoActionRequired = "No specific action required"

// sentenceRule classifies a sentence by keyword and captures the clause
// after its trigger. The first rule whose triggers appear wins.
type sentenceRule struct {
	category Category
	triggers []string
	capture  *regexp.Regexp
	prefix   string
	fallback string
}

func compileSentenceRules() []sentenceRule {
	return []sentenceRule{
		{
			category: CategoryObligation,
			triggers: []string{"need to", "must"},
			capture:  regexp.MustCompile(`(?i)need to\s+(.+?)[.!?]`),
			fallback: "Review requirements mentioned",
		},
		{
			category: CategoryFutureIntent,
			triggers: []string{"will", "going to"},
			capture:  regexp.MustCompile(`(?i)(?:will|going to)\s+(.+?)[.!?]`),
			fallback: "Plan for upcoming tasks",
		},
		{
			category: CategoryRecommendation,
			triggers: []string{"should", "recommend"},
			capture:  regexp.MustCompile(`(?i)should\s+(.+?)[.!?]`),
			prefix:   "Consider: ",
			fallback: "Review recommendations",
		},
		{
			category: CategoryTask,
			triggers: []string{"task", "assignment"},
			capture:  regexp.MustCompile(`(?i)task\s+(?:is\s+)?to\s+(.+?)[.!?]`),
			prefix:   "Task: ",
			fallback: "Identify assigned tasks",
		},
		{
			category: CategoryFollowUp,
			triggers: []string{"follow up", "check"},
			capture:  regexp.MustCompile(`(?i)follow up\s+(?:on|with|about)\s+(.+?)[.!?]`),
			prefix:   "Follow up on: ",
			fallback: "Schedule follow-up",
		},
		{
			category: CategoryScheduling,
			triggers: []string{"schedule", "meeting"},
			capture:  regexp.MustCompile(`(?i)(?:schedule|meeting)\s+(?:for|about)\s+(.+?)[.!?]`),
			prefix:   "Schedule: ",
			fallback: "Arrange meeting if needed",
		},
	}
}

// Classify returns the category of sentence and the action it implies.
func (e *Engine) Classify(sentence string) (Category, string) {
	lower := strings.ToLower(sentence)
	if !endsWithAny(sentence, ".!?") {
		sentence += "."
	}
	for _, rule := range e.rules.sentences {
		if !containsAny(lower, rule.triggers) {
			continue
		}
		if m := rule.capture.FindStringSubmatch(sentence); m != nil {
			if action := e.formatAction(m[1]); action != "" {
				return rule.category, rule.prefix + action
			}
		}
		return rule.category, rule.fallback
	}
	return CategoryNone, NoActionRequired
}

// Breakdown splits a provider summary into cleaned sentences and pairs each
// with its implied action.
func (e *Engine) Breakdown(summary string) []entities.SentenceAction {
	sentences := e.SummarySentences(summary)
	rows := make([]entities.SentenceAction, len(sentences))
	for i, s := range sentences {
		_, action := e.Classify(s)
		rows[i] = entities.SentenceAction{Number: i + 1, Sentence: s, Action: action}
	}
	return rows
}

var terminalRun = regexp.MustCompile(`[.!?]+`)

// SummarySentences splits on runs of terminal punctuation, removes filler
// words and returns at most the configured number of tidy sentences.
func (e *Engine) SummarySentences(summary string) []string {
	var out []string
	for _, part := range terminalRun.Split(summary, -1) {
		if len(out) == e.maxBreakdownSentences {
			break
		}
		if s := e.cleanSummarySentence(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (e *Engine) cleanSummarySentence(s string) string {
	s = e.rules.fillers.ReplaceAllString(s, "")
	s = collapseSpaces(s)
	s = strings.Trim(s, ", ")
	if s == "" {
		return ""
	}
	return finishSentence(s)
}

func (e *Engine) formatAction(text string) string {
	text = e.rules.actionLead.ReplaceAllString(strings.TrimSpace(text), "")
	text = capitalize(collapseSpaces(text))
	if text == "" {
		return ""
	}
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
