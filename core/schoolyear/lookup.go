package schoolyear

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

var (
	maxSuggestions    = 3
	suggestionsCutoff = 0.6
)

// UnknownRefError is returned when a course or instructor reference matches nothing.
type UnknownRefError struct {
	Kind        string // "course" or "instructor"
	Ref         string
	Suggestions []string
}

func (e *UnknownRefError) Error() string {
	msg := fmt.Sprintf("unknown %s %q", e.Kind, e.Ref)
	if len(e.Suggestions) > 0 {
		quoted := make([]string, 0, len(e.Suggestions))
		for _, s := range e.Suggestions {
			quoted = append(quoted, strconv.Quote(s))
		}
		msg += "; did you mean " + strings.Join(quoted, " or ") + "?"
	}
	return msg
}

// CourseID resolves `ref`, an id or a case-insensitive name, against the loaded courses.
func (a *Admin) CourseID(ref string) (int, error) {
	courses := a.courses.All()
	names := make([]string, 0, len(courses))
	ids := make([]int, 0, len(courses))
	for _, crs := range courses {
		names = append(names, crs.Name)
		ids = append(ids, crs.ID)
	}
	return resolve("course", ref, ids, names)
}

// InstructorID resolves `ref`, an id, an identification or a case-insensitive name,
// against the loaded instructors.
func (a *Admin) InstructorID(ref string) (int, error) {
	insts := a.instructors.All()
	names := make([]string, 0, len(insts))
	ids := make([]int, 0, len(insts))
	for _, inst := range insts {
		if strings.EqualFold(inst.Identification, strings.TrimSpace(ref)) {
			return inst.ID, nil
		}
		names = append(names, inst.Name)
		ids = append(ids, inst.ID)
	}
	return resolve("instructor", ref, ids, names)
}

func resolve(kind, ref string, ids []int, names []string) (int, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		for _, known := range ids {
			if known == id {
				return id, nil
			}
		}
		return 0, &UnknownRefError{Kind: kind, Ref: ref}
	}

	for i, name := range names {
		if strings.EqualFold(name, ref) {
			return ids[i], nil
		}
	}
	return 0, &UnknownRefError{Kind: kind, Ref: ref, Suggestions: suggest(ref, names)}
}

// suggest returns the names most similar to `ref`, best first.
func suggest(ref string, names []string) []string {
	type match struct {
		name  string
		score float64
	}

	chars := strings.Split(strings.ToLower(ref), "")
	var matches []match
	for _, name := range names {
		score := difflib.NewMatcher(chars, strings.Split(strings.ToLower(name), "")).Ratio()
		if score >= suggestionsCutoff {
			matches = append(matches, match{name: name, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.name)
	}
	return suggestions
}
