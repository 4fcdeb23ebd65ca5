package digest

// Lexicon holds every fixed word and phrase table the engine consults.
// Tables are read-only after NewEngine compiles them; callers that want a
// localized variant should start from DefaultLexicon and swap entries.
type Lexicon struct {
	// StopWords are dropped before word importance is computed.
	StopWords []string

	// DiscourseMarkers are informal fillers treated as soft sentence ends
	// when followed by terminal punctuation or end of text.
	DiscourseMarkers []string

	// Abbreviations are lower-cased tokens (without the trailing period)
	// that never end a sentence.
	Abbreviations []string

	EmphasisWords  []string
	CommunityWords []string
	ActionVerbs    []string

	// HedgePhrases are removed from extracted action items as whole words.
	HedgePhrases []string

	// FarewellPhrases disqualify an extracted action item.
	FarewellPhrases []string

	// FillerWords are removed from provider summary sentences before the
	// per-sentence breakdown.
	FillerWords []string

	// AssignmentCues introduce a task addressed to a named person.
	AssignmentCues []string

	// LeadingCourtesies are stripped from the start of attributed tasks.
	LeadingCourtesies []string

	// OrdinalMarkers sequence spoken assignments ("First, Sam, ...").
	OrdinalMarkers []string

	// NonNames are capitalized words that never count as a person.
	NonNames []string

	// TaskIndicators mark a sentence as carrying work for the current speaker.
	TaskIndicators []string

	// SpeakerRoles replace "Speaker 0".."Speaker 5" in order.
	SpeakerRoles []string
}

// DefaultLexicon returns a fresh copy of the built-in English tables,
// including the Nigerian English markers the original corpus was tuned on.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StopWords: []string{
			"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
			"of", "with", "by", "is", "are", "was", "were", "be", "been", "being",
			"have", "has", "had", "do", "does", "did", "will", "would", "should",
			"can", "could", "may", "might", "must", "shall", "that", "this", "these",
			"those", "i", "you", "he", "she", "it", "we", "they", "me", "him", "her",
			"us", "them", "my", "your", "his", "its", "our", "their", "mine", "yours",
		},
		DiscourseMarkers: []string{"omo", "abeg", "chai", "na wa", "ehen", "okay", "alright"},
		Abbreviations: []string{
			"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "vs", "etc",
			"inc", "ltd", "co", "no", "approx", "dept",
		},
		EmphasisWords: []string{
			"important", "critical", "urgent", "must", "need", "essential",
			"key", "major", "significant", "priority", "action", "decision",
			"conclusion", "summary", "finally", "therefore", "however",
		},
		CommunityWords: []string{"please", "kindly", "abeg", "make we", "we need", "we must"},
		ActionVerbs: []string{
			"create", "build", "design", "write", "send", "email",
			"call", "meet", "schedule", "update", "fix", "review",
			"prepare", "complete", "finish", "submit", "share",
			"implement", "deploy", "test", "validate", "evaluate",
			"report", "notify", "inform", "follow up", "assign",
		},
		HedgePhrases: []string{
			"I think", "maybe we", "perhaps we", "probably",
			"just want to", "really need to", "actually",
		},
		FarewellPhrases: []string{"thank you", "thanks", "bye", "goodbye"},
		FillerWords: []string{
			"um", "uh", "like", "you know", "actually", "basically",
			"literally", "seriously", "honestly", "just", "really",
		},
		AssignmentCues: []string{
			"your job is to", "you'll be handling", "your focus is on",
			"you're responsible for", "you are responsible for", "you are to",
			"please", "kindly", "abeg",
		},
		LeadingCourtesies: []string{"please", "kindly", "abeg", "beg", "oya", "also", "this includes"},
		OrdinalMarkers:    []string{"First", "Next", "Lastly", "Also", "And", "Then", "Finally"},
		NonNames: []string{
			"First", "Next", "Lastly", "Also", "And", "Then", "Finally", "Team",
			"The", "This", "That", "These", "Those", "We", "You", "They", "But",
			"So", "Okay", "Alright", "Yes", "Well", "Please", "Thanks", "Thank",
			"Speaker", "Action", "Task", "Todo", "Note", "Deadline",
		},
		TaskIndicators: []string{
			"review", "update", "implement", "test", "fix", "set up",
			"make sure", "confirm", "log", "run", "handle", "database",
			"api", "bugs", "authentication",
		},
		SpeakerRoles: []string{"Host", "Guest", "Participant", "Attendee", "Moderator", "Presenter"},
	}
}
