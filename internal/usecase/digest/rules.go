package digest

import (
	"regexp"
	"strconv"
	"strings"
)

// rules is the compiled form of a Lexicon.
type rules struct {
	stopWords     map[string]struct{}
	abbreviations map[string]struct{}
	nonNames      map[string]struct{}
	softBoundary  *regexp.Regexp

	emphasis  []string
	community []string
	verbs     []string
	modal     *regexp.Regexp
	digits    *regexp.Regexp

	families     []patternFamily
	speakerLabel *regexp.Regexp
	hedges       []*regexp.Regexp
	farewell     *regexp.Regexp
	fillers      *regexp.Regexp
	sentences    []sentenceRule
	actionLead   *regexp.Regexp

	assignment     *regexp.Regexp
	nameComma      *regexp.Regexp
	ordinal        *regexp.Regexp
	nameRef        *regexp.Regexp
	clauseStop     *regexp.Regexp
	cuePrefix      *regexp.Regexp
	courtesyPrefix *regexp.Regexp
	vagueStarter   *regexp.Regexp
	taskIndicators []string

	roleLabels   []*regexp.Regexp
	roles        []string
	otherSpeaker *regexp.Regexp
	roleColon    *regexp.Regexp
}

// namePattern matches a capitalized token or two-token phrase, each token at
// least three letters long.
const namePattern = `[A-Z][a-z]{2,}(?:\s[A-Z][a-z]{2,})?`

func compileRules(l Lexicon) *rules {
	r := &rules{
		stopWords:     toSet(l.StopWords, strings.ToLower),
		abbreviations: toSet(l.Abbreviations, strings.ToLower),
		nonNames:      toSet(l.NonNames, func(s string) string { return s }),
		emphasis:      lowerAll(l.EmphasisWords),
		community:     lowerAll(l.CommunityWords),
		verbs:         lowerAll(l.ActionVerbs),
		modal:         regexp.MustCompile(`(?i)(should|must|need to|have to)`),
		digits:        regexp.MustCompile(`\d+`),
		speakerLabel:  regexp.MustCompile(`(?i)^(?:speaker\s*\d+|` + alternation(l.SpeakerRoles) + `)\s*:?\s*`),
		farewell:      regexp.MustCompile(`(?i)\b(?:` + alternation(l.FarewellPhrases) + `)\b`),
		fillers:       regexp.MustCompile(`(?i)\b(?:` + alternation(l.FillerWords) + `)\b`),
		actionLead:    regexp.MustCompile(`(?i)^(?:please|kindly|maybe|perhaps)\s+`),
		otherSpeaker:  regexp.MustCompile(`(?i)\bSpeaker\s*\d+\b`),

		taskIndicators: lowerAll(l.TaskIndicators),
		roles:          append([]string(nil), l.SpeakerRoles...),
	}

	if len(l.DiscourseMarkers) > 0 {
		r.softBoundary = regexp.MustCompile(`(?i)\b(?:` + alternation(l.DiscourseMarkers) + `)(?:[.!?]|$)`)
	} else {
		r.softBoundary = regexp.MustCompile(`$^`)
	}

	for _, h := range l.HedgePhrases {
		r.hedges = append(r.hedges, regexp.MustCompile(`(?i)\b`+phrase(h)+`\b`))
	}

	r.families = compileFamilies()
	r.sentences = compileSentenceRules()

	ordinals := alternation(l.OrdinalMarkers)
	r.assignment = regexp.MustCompile(`(` + namePattern + `)(?:[,.:]\s*|\s+)(?i:` + alternation(l.AssignmentCues) + `)\s*`)
	r.nameComma = regexp.MustCompile(`(` + namePattern + `),\s*`)
	r.ordinal = regexp.MustCompile(`\b(?:` + ordinals + `)\s*,\s*(` + namePattern + `),\s*`)
	r.nameRef = regexp.MustCompile(`(` + namePattern + `)[,.:]`)
	r.clauseStop = regexp.MustCompile(`[.!?]|\b(?:` + ordinals + `)\b|` + namePattern + `[,:]`)
	r.cuePrefix = regexp.MustCompile(`(?i)^(?:` + alternation(l.AssignmentCues) + `)\s*`)
	r.courtesyPrefix = regexp.MustCompile(`(?i)^(?:` + alternation(l.LeadingCourtesies) + `)\b\s*`)
	r.vagueStarter = regexp.MustCompile(`(?i)^(?:i|we|you)\s(?:will|should|must|need to)\s`)

	for i := range l.SpeakerRoles {
		r.roleLabels = append(r.roleLabels, regexp.MustCompile(`(?i)\bSpeaker\s*`+strconv.Itoa(i)+`\b`))
	}
	r.roleColon = regexp.MustCompile(`\b(` + alternation(append(append([]string(nil), l.SpeakerRoles...), "Speaker")) + `)[ \t]*:\s*`)
	return r
}

// phrase quotes a literal phrase and lets its words be separated by any run
// of whitespace.
func phrase(p string) string {
	words := strings.Fields(p)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `\s+`)
}

func alternation(phrases []string) string {
	parts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if strings.TrimSpace(p) == "" {
			continue
		}
		parts = append(parts, phrase(p))
	}
	if len(parts) == 0 {
		return `$^`
	}
	return strings.Join(parts, "|")
}

func toSet(words []string, norm func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[norm(w)] = struct{}{}
	}
	return set
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
