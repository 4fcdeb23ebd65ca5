package digest

// NormalizeSpeakers replaces diarization labels with role names: "Speaker 0"
// becomes the first role, "Speaker 1" the second and so on. Numbered labels
// beyond the role table collapse to "Speaker", and a role followed by a
// colon is rewritten as "<Role>: ".
func (e *Engine) NormalizeSpeakers(text string) string {
	if text == "" {
		return text
	}
	for i, re := range e.rules.roleLabels {
		text = re.ReplaceAllLiteralString(text, e.rules.roles[i])
	}
	text = e.rules.otherSpeaker.ReplaceAllLiteralString(text, "Speaker")
	return e.rules.roleColon.ReplaceAllString(text, "${1}: ")
}
