package digest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/summaro/internal/domain/entities"
)

const (
	minTaskChars    = 20
	minContextChars = 25
	minTeamChars    = 30
)

// Attribute finds tasks addressed to named people in text and returns one
// merged item per person, sorted by name. Indicator sentences with no
// speaker in scope collect under "Team", which is only reported when its
// merged task is substantial. A non-empty roster restricts which
// capitalized words count as names.
func (e *Engine) Attribute(text string, roster []string) []entities.ActionItem {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	a := &attribution{engine: e, ledger: newTaskLedger()}
	if len(roster) > 0 {
		a.roster = make(map[string]string, len(roster))
		for _, name := range roster {
			if name = strings.TrimSpace(name); name != "" {
				a.roster[strings.ToLower(name)] = name
			}
		}
	}

	a.assignments(text)
	a.nameCommas(text)
	a.ordinals(text)
	a.carryContext(text)
	return a.ledger.items()
}

type attribution struct {
	engine *Engine
	roster map[string]string
	ledger *taskLedger
}

func (a *attribution) assignments(text string) {
	r := a.engine.rules
	for _, m := range r.assignment.FindAllStringSubmatchIndex(text, -1) {
		name, ok := a.person(text[m[2]:m[3]])
		if !ok {
			continue
		}
		cue := strings.TrimLeft(text[m[3]:m[1]], ",.: \t\n")
		a.record(name, cue+a.clauseAt(text, m[1]))
	}
}

func (a *attribution) nameCommas(text string) {
	for _, m := range a.engine.rules.nameComma.FindAllStringSubmatchIndex(text, -1) {
		if name, ok := a.person(text[m[2]:m[3]]); ok {
			a.record(name, a.clauseAt(text, m[1]))
		}
	}
}

func (a *attribution) ordinals(text string) {
	for _, m := range a.engine.rules.ordinal.FindAllStringSubmatchIndex(text, -1) {
		if name, ok := a.person(text[m[2]:m[3]]); ok {
			a.record(name, a.clauseAt(text, m[1]))
		}
	}
}

// carryContext walks sentences in order. A sentence naming someone makes
// them the current speaker; a later unnamed sentence carrying a task
// indicator is theirs.
func (a *attribution) carryContext(text string) {
	current := ""
	for _, s := range a.engine.SplitSentences(text) {
		if name, ok := a.firstName(s); ok {
			current = name
			continue
		}
		if utf8.RuneCountInString(s) <= minContextChars || !a.hasIndicator(s) {
			continue
		}
		if current == "" {
			a.ledger.add(entities.TeamPerson, a.cleanTask(s))
			continue
		}
		a.record(current, s)
	}
}

func (a *attribution) firstName(sentence string) (string, bool) {
	for _, m := range a.engine.rules.nameRef.FindAllStringSubmatch(sentence, -1) {
		if name, ok := a.person(m[1]); ok {
			return name, true
		}
	}
	return "", false
}

func (a *attribution) hasIndicator(sentence string) bool {
	return containsAny(strings.ToLower(sentence), a.engine.rules.taskIndicators)
}

// person resolves a candidate name. Leading words that can never be names
// ("Okay John") are dropped first.
func (a *attribution) person(candidate string) (string, bool) {
	words := strings.Fields(candidate)
	for len(words) > 0 {
		if _, bad := a.engine.rules.nonNames[words[0]]; !bad {
			break
		}
		words = words[1:]
	}
	if len(words) == 0 {
		return "", false
	}
	for _, w := range words {
		if _, bad := a.engine.rules.nonNames[w]; bad {
			return "", false
		}
	}
	name := strings.Join(words, " ")
	if name == entities.TeamPerson {
		return "", false
	}
	if a.roster == nil {
		return name, true
	}
	if canonical, ok := a.roster[strings.ToLower(name)]; ok {
		return canonical, true
	}
	// "Sarah Jones" still resolves when only "Sarah" is on the roster.
	if canonical, ok := a.roster[strings.ToLower(words[0])]; ok {
		return canonical, true
	}
	return "", false
}

// clauseAt returns the text from offset up to the next sentence boundary,
// ordinal marker or name onset.
func (a *attribution) clauseAt(text string, offset int) string {
	rest := text[offset:]
	if loc := a.engine.rules.clauseStop.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	return rest
}

// record cleans a raw task and files it under person. The length floor
// applies to the task as spoken, cue included.
func (a *attribution) record(person, raw string) {
	tidy := strings.Trim(collapseSpaces(raw), ",;:-. ")
	if utf8.RuneCountInString(tidy) < minTaskChars {
		return
	}
	// No second floor after cleanup: "Fix the bug." must survive.
	if task := a.cleanTask(tidy); hasLetter(task) {
		a.ledger.add(person, task)
	}
}

// cleanTask removes courtesy words, assignment cues and weak openers from
// the front of a task.
func (a *attribution) cleanTask(task string) string {
	r := a.engine.rules
	task = strings.Trim(collapseSpaces(task), ",;:-. ")
	for {
		next := r.courtesyPrefix.ReplaceAllString(task, "")
		next = r.cuePrefix.ReplaceAllString(next, "")
		next = r.vagueStarter.ReplaceAllString(next, "")
		next = strings.TrimLeft(next, ",;: ")
		if next == task {
			return task
		}
		task = next
	}
}

// taskLedger keeps each person's tasks as an ordered list of atomic strings
// and joins them only when rendered.
type taskLedger struct {
	tasks map[string][]string
}

func newTaskLedger() *taskLedger {
	return &taskLedger{tasks: make(map[string][]string)}
}

func (l *taskLedger) add(person, task string) {
	task = strings.TrimSpace(task)
	if task == "" {
		return
	}
	lower := strings.ToLower(task)
	for _, existing := range l.tasks[person] {
		if strings.Contains(strings.ToLower(existing), lower) {
			return
		}
	}
	l.tasks[person] = append(l.tasks[person], task)
}

// Merge joins tasks with " and ", lower-casing the first letter of each
// task after the first.
func Merge(tasks []string) string {
	parts := make([]string, len(tasks))
	for i, t := range tasks {
		t = strings.TrimRight(t, ".!? ")
		if i == 0 {
			parts[i] = capitalize(t)
		} else {
			parts[i] = lowerFirst(t)
		}
	}
	return strings.Join(parts, " and ")
}

func (l *taskLedger) items() []entities.ActionItem {
	people := make([]string, 0, len(l.tasks))
	for p := range l.tasks {
		if p != entities.TeamPerson {
			people = append(people, p)
		}
	}
	sort.Strings(people)

	out := make([]entities.ActionItem, 0, len(people)+1)
	for _, p := range people {
		out = append(out, entities.ActionItem{Person: p, Text: Merge(l.tasks[p]) + "."})
	}
	if team := Merge(l.tasks[entities.TeamPerson]); utf8.RuneCountInString(team) > minTeamChars {
		out = append(out, entities.ActionItem{Person: entities.TeamPerson, Text: team + "."})
	}
	return out
}
