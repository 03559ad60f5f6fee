// Package textops implements find and replace over editor text.
package textops

import (
	"strings"
	"unicode"
)

// Match is a half-open [Start, End) range of rune offsets.
type Match struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// FindAll returns every case-insensitive occurrence of term in text. The scan
// resumes at the end of each match, so overlapping occurrences are not
// reported. An empty term matches nothing.
func FindAll(text, term string) []Match {
	if term == "" || text == "" {
		return nil
	}

	hay := lowerRunes(text)
	needle := lowerRunes(term)
	if len(needle) > len(hay) {
		return nil
	}

	var matches []Match
	for i := 0; i+len(needle) <= len(hay); {
		if equalAt(hay, needle, i) {
			matches = append(matches, Match{Start: i, End: i + len(needle)})
			i += len(needle)
			continue
		}
		i++
	}
	return matches
}

// Replace substitutes every literal, case-sensitive occurrence of find with
// repl. It returns the new text and the number of replacements.
func Replace(text, find, repl string) (string, int) {
	if find == "" {
		return text, 0
	}
	n := strings.Count(text, find)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, find, repl), n
}

// Position converts a rune offset into a 1-based line and column. Lines are
// separated by '\n'; a trailing '\r' belongs to its line.
func Position(text string, offset int) (line, col int) {
	line, col = 1, 1
	i := 0
	for _, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i++
	}
	return line, col
}

// Highlight returns text with every match wrapped by style. Matches must be
// sorted and non-overlapping, as returned by FindAll.
func Highlight(text string, matches []Match, style func(string) string) string {
	if len(matches) == 0 || style == nil {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	prev := 0
	for _, m := range matches {
		if m.Start < prev || m.End > len(runes) {
			continue
		}
		b.WriteString(string(runes[prev:m.Start]))
		b.WriteString(style(string(runes[m.Start:m.End])))
		prev = m.End
	}
	b.WriteString(string(runes[prev:]))

	return b.String()
}

func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func equalAt(hay, needle []rune, at int) bool {
	for j, r := range needle {
		if hay[at+j] != r {
			return false
		}
	}
	return true
}
