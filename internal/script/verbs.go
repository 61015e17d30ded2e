package script

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Verb is a canonical script command.
type Verb string

const (
	VerbSelect Verb = "select"
	VerbPlay   Verb = "play"
	VerbEnd    Verb = "end"
	VerbFrame  Verb = "frame"
	VerbNew    Verb = "new"
	VerbKeys   Verb = "keys"
	VerbShow   Verb = "show"
)

var (
	ErrUnknownVerb   = errors.New("unknown command")
	ErrAmbiguousVerb = errors.New("ambiguous command")
)

type verbDef struct {
	verb    Verb
	aliases []string
	minArgs int
	maxArgs int // -1 for the raw rest of the line
}

var verbs = []verbDef{
	{VerbSelect, []string{"sel", "pick"}, 1, 10},
	{VerbPlay, []string{"card", "pile"}, 1, 1},
	{VerbEnd, []string{"roll", "stop"}, 0, 0},
	{VerbFrame, []string{"concede", "next"}, 0, 0},
	{VerbNew, []string{"restart", "reset"}, 0, 0},
	{VerbKeys, []string{"press", "type"}, 0, -1},
	{VerbShow, []string{"board", "print"}, 0, 0},
}

func lookupVerb(v Verb) verbDef {
	for _, d := range verbs {
		if d.verb == v {
			return d
		}
	}
	return verbDef{}
}

// MatchVerb resolves a typed command word. An exact name or alias wins,
// then a unique prefix, then the closest name within a small edit distance.
func MatchVerb(word string) (Verb, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "", ErrUnknownVerb
	}

	for _, d := range verbs {
		if word == string(d.verb) || containsWord(d.aliases, word) {
			return d.verb, nil
		}
	}

	switch found := prefixMatches(word); len(found) {
	case 0:
	case 1:
		return found[0], nil
	default:
		return "", ambiguous(word, found)
	}
	if len(word) < 3 {
		return "", fmt.Errorf("%w %q", ErrUnknownVerb, word)
	}
	return matchDistance(word)
}

func prefixMatches(word string) []Verb {
	var found []Verb
	for _, d := range verbs {
		for _, name := range names(d) {
			if strings.HasPrefix(name, word) {
				found = appendVerb(found, d.verb)
			}
		}
	}
	return found
}

func matchDistance(word string) (Verb, error) {
	best := -1
	var found []Verb
	for _, d := range verbs {
		for _, name := range names(d) {
			dist := levenshtein.ComputeDistance(word, name)
			if dist > distanceLimit(len(name)) {
				continue
			}
			switch {
			case best < 0 || dist < best:
				best = dist
				found = []Verb{d.verb}
			case dist == best:
				found = appendVerb(found, d.verb)
			}
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w %q", ErrUnknownVerb, word)
	case 1:
		return found[0], nil
	default:
		return "", ambiguous(word, found)
	}
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func names(d verbDef) []string {
	return append([]string{string(d.verb)}, d.aliases...)
}

func ambiguous(word string, found []Verb) error {
	list := make([]string, len(found))
	for i, v := range found {
		list[i] = string(v)
	}
	sort.Strings(list)
	return fmt.Errorf("%w %q: could be %s", ErrAmbiguousVerb, word, strings.Join(list, ", "))
}

func appendVerb(list []Verb, v Verb) []Verb {
	for _, have := range list {
		if have == v {
			return list
		}
	}
	return append(list, v)
}

func containsWord(list []string, word string) bool {
	for _, s := range list {
		if s == word {
			return true
		}
	}
	return false
}
