// Package moderation censors forbidden words in message content before it
// is persisted. Replacement is rune for rune, so censoring never changes
// the content length the validation layer already approved.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	enabled      bool
}

// NewModerator builds the Aho-Corasick automaton over the lowered word
// list. An empty list yields a disabled moderator that passes content
// through untouched.
func NewModerator(censoredWords []string, censoredChar rune) (Moderator, error) {
	if len(censoredWords) == 0 {
		return Moderator{}, nil
	}
	patterns := make([][]rune, len(censoredWords))
	for i, word := range censoredWords {
		patterns[i] = lowerRunes([]rune(word))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, censoredChar: censoredChar, enabled: true}, nil
}

// Censor replaces every occurrence of a forbidden word with the censor
// character, case-insensitively.
func (m Moderator) Censor(content string) string {
	if !m.enabled {
		return content
	}
	runes := []rune(content)
	spans := m.matcher.MultiPatternSearch(lowerRunes(runes), false)
	for _, span := range spans {
		for i := span.Pos; i < span.Pos+len(span.Word) && i < len(runes); i++ {
			runes[i] = m.censoredChar
		}
	}
	return string(runes)
}

func lowerRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = unicode.ToLower(r)
	}
	return out
}
