package entities

// TeamPerson is the sentinel owner for work that could not be attributed.
const TeamPerson = "Team"

// ActionItem is one discrete follow-up extracted from a conversation.
// Person is empty for unattributed items.
type ActionItem struct {
	Person string `json:"person,omitempty"`
	Text   string `json:"text"`
}

// String renders the item as "<Person>: <Text>" or just the text.
func (a ActionItem) String() string {
	if a.Person == "" {
		return a.Text
	}
	return a.Person + ": " + a.Text
}

// SentenceAction pairs a provider summary sentence with the action it implies.
type SentenceAction struct {
	Number   int    `json:"sentenceNumber"`
	Sentence string `json:"sentence"`
	Action   string `json:"action"`
}
