package digest

import (
	"reflect"
	"testing"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

func TestAttribute(t *testing.T) {
	e := NewEngine()
	cases := []struct {
		name string
		in   string
		want []entities.ActionItem
	}{
		{
			name: "direct assignments",
			in:   "John, your job is to fix the bug. Sarah, you're responsible for the dashboard design.",
			want: []entities.ActionItem{
				{Person: "John", Text: "Fix the bug."},
				{Person: "Sarah", Text: "The dashboard design."},
			},
		},
		{
			name: "merged tasks",
			in:   "Sam, please review the budget numbers. Sam, also update the launch checklist.",
			want: []entities.ActionItem{
				{Person: "Sam", Text: "Review the budget numbers and update the launch checklist."},
			},
		},
		{
			name: "ordinal markers",
			in:   "First, Tunde, set up the staging server. Next, Ngozi, confirm the vendor contract.",
			want: []entities.ActionItem{
				{Person: "Ngozi", Text: "Confirm the vendor contract."},
				{Person: "Tunde", Text: "Set up the staging server."},
			},
		},
		{
			name: "context carry",
			in:   "Amara: let us plan the sprint. We must review the database migration scripts.",
			want: []entities.ActionItem{
				{Person: "Amara", Text: "Review the database migration scripts."},
			},
		},
		{
			name: "short task kept after courtesy removal",
			in:   "Sam, please review it now.",
			want: []entities.ActionItem{
				{Person: "Sam", Text: "Review it now."},
			},
		},
		{
			name: "substantial team work",
			in:   "We need to fix the authentication bugs before launch.",
			want: []entities.ActionItem{
				{Person: entities.TeamPerson, Text: "Fix the authentication bugs before launch."},
			},
		},
		{
			name: "small team work hidden",
			in:   "We should test the api today.",
			want: []entities.ActionItem{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Attribute(tc.in, nil)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Attribute() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAttributeRoster(t *testing.T) {
	e := NewEngine()
	text := "Friday, we will ship the new dashboard. Kemi, please update the release notes."

	open := e.Attribute(text, nil)
	if len(open) != 2 || open[0].Person != "Friday" {
		t.Fatalf("capitalization heuristic should pick up Friday, got %+v", open)
	}

	got := e.Attribute(text, []string{"kemi"})
	want := []entities.ActionItem{{Person: "kemi", Text: "Update the release notes."}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Attribute() = %+v, want %+v", got, want)
	}
}

func TestMerge(t *testing.T) {
	got := Merge([]string{"review the deck.", "Send it to Ada"})
	if want := "Review the deck and send it to Ada"; got != want {
		t.Fatalf("Merge() = %q, want %q", got, want)
	}
}
