package digest

import "testing"

func TestNormalizeSpeakers(t *testing.T) {
	e := NewEngine()
	cases := map[string]string{
		"Speaker 0: hello. Speaker 1:   hi.":      "Host: hello. Guest: hi.",
		"speaker5:ready":                          "Presenter: ready",
		"Speaker 7: late. Speaker 10: also late.": "Speaker: late. Speaker: also late.",
		"Speaker 0 : hi. Speaker 1  :there.":      "Host: hi. Guest: there.",
		"No labels here.":                         "No labels here.",
		"":                                        "",
	}
	for in, want := range cases {
		if got := e.NormalizeSpeakers(in); got != want {
			t.Fatalf("NormalizeSpeakers(%q) = %q, want %q", in, got, want)
		}
	}
}
