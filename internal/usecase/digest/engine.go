// Package digest turns a raw transcript and a provider summary into a bounded
// extractive summary and a list of attributable action items.
//
// Everything here is a pure function of its input plus the tables in Lexicon.
// An Engine is immutable after NewEngine and safe for concurrent use.
package digest

import (
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

const (
	DefaultTargetSentences       = 3
	DefaultMaxActionItems        = 5
	DefaultMaxBreakdownSentences = 5

	// NoActionItems is returned when nothing actionable was found.
	NoActionItems = "No specific action items mentioned in the meeting."
	// NoSummary is returned when neither input yields any sentence.
	NoSummary = "No summary could be generated from the provided text."
)

// Input is one post-processing request.
type Input struct {
	Transcript          string
	ProviderSummary     string
	TargetSentenceCount int
	// Participants restricts person detection to these names when non-empty.
	Participants []string
}

// Engine runs the summarization and action-item pipeline.
type Engine struct {
	targetSentences       int
	maxActionItems        int
	maxBreakdownSentences int
	participants          []string
	lexicon               Lexicon
	rules                 *rules
	logger                *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTargetSentences sets the default summary length.
func WithTargetSentences(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.targetSentences = n
		}
	}
}

// WithMaxActionItems caps the action item list; zero means no cap.
func WithMaxActionItems(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxActionItems = n
		}
	}
}

// WithMaxBreakdownSentences caps the per-sentence breakdown.
func WithMaxBreakdownSentences(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxBreakdownSentences = n
		}
	}
}

// WithParticipants sets the default participant roster.
func WithParticipants(names []string) Option {
	return func(e *Engine) {
		e.participants = append([]string(nil), names...)
	}
}

// WithLexicon replaces the built-in tables.
func WithLexicon(l Lexicon) Option {
	return func(e *Engine) {
		e.lexicon = l
	}
}

// WithLogger sets the logger used for degradation events.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine compiles the lexicon into matchers and returns a ready engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		targetSentences:       DefaultTargetSentences,
		maxActionItems:        DefaultMaxActionItems,
		maxBreakdownSentences: DefaultMaxBreakdownSentences,
		lexicon:               DefaultLexicon(),
		logger:                zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rules = compileRules(e.lexicon)
	return e
}

// Process produces the summary and action items for one conversation.
// It never fails: every stage degrades to a deterministic fallback.
func (e *Engine) Process(in Input) entities.Digest {
	transcript := e.NormalizeSpeakers(in.Transcript)
	summary := strings.TrimSpace(in.ProviderSummary)

	out := entities.Digest{Summary: NoSummary}
	for _, source := range []string{transcript, summary} {
		if len(e.Sentences(source)) == 0 {
			continue
		}
		if s := strings.TrimSpace(e.Summarize(source, in.TargetSentenceCount)); s != "" {
			out.Summary = s
			break
		}
	}

	participants := in.Participants
	if len(participants) == 0 {
		participants = e.participants
	}

	items := e.Attribute(transcript, participants)
	actionSource := summary
	if actionSource == "" {
		actionSource = transcript
	}
	for _, text := range e.ExtractActions(actionSource) {
		items = append(items, entities.ActionItem{Text: text})
	}
	items = DeduplicateItems(items)
	if e.maxActionItems > 0 && len(items) > e.maxActionItems {
		items = items[:e.maxActionItems]
	}
	if len(items) == 0 {
		items = []entities.ActionItem{{Text: NoActionItems}}
	}
	out.ActionItems = items

	if summary != "" {
		out.Breakdown = e.Breakdown(summary)
	}
	return out
}
