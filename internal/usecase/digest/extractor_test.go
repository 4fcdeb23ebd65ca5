package digest

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestExtractActions(t *testing.T) {
	e := NewEngine()
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "obligation and request, farewell ignored",
			in:   "Need to finish the report. Please call the client. Thank you.",
			want: []string{"Finish the report.", "Call the client."},
		},
		{
			name: "farewell inside clause",
			in:   "We should say thank you to the whole team.",
			want: nil,
		},
		{
			name: "family order then match order",
			in:   "Don't forget to book the venue for May. Action item: draft the press release. We will update the pricing page.",
			want: []string{
				"Update the pricing page.",
				"Draft the press release.",
				"Book the venue for May.",
			},
		},
		{
			name: "follow up and deadline",
			in:   "Follow up with the legal team on the contract. The deadline is the end of next month.",
			want: []string{
				"The legal team on the contract.",
				"The end of next month.",
			},
		},
		{
			name: "too short",
			in:   "We must go now.",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.ExtractActions(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractActions() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractActionsBounds(t *testing.T) {
	e := NewEngine()
	text := "Host: we need to migrate every customer account to the new billing platform before the audit, " +
		"including the legacy enterprise contracts, the reseller agreements, the partner discounts and all " +
		"historical invoices from the previous three fiscal years. Please ping ops. Could you send the slides to Ada? " +
		"Remember to archive the old recordings."
	for _, item := range e.ExtractActions(text) {
		n := utf8.RuneCountInString(item)
		if n < minActionChars || n > maxActionChars {
			t.Fatalf("item %q has length %d", item, n)
		}
		if !endsWithAny(item, ".!?") {
			t.Fatalf("item %q is not terminated", item)
		}
	}
}

func TestCleanAction(t *testing.T) {
	e := NewEngine()
	cases := map[string]string{
		"Speaker 1: I think we ship the beta build": "We ship the beta build.",
		"  probably   move the standup  ":           "Move the standup.",
		"actually review the draft!":                "Review the draft!",
	}
	for in, want := range cases {
		if got := e.CleanAction(in); got != want {
			t.Fatalf("CleanAction(%q) = %q, want %q", in, got, want)
		}
	}
}
