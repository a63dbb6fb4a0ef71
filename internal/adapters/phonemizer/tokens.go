package phonemizer

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	wordToken tokenKind = iota
	punctToken
)

// token is a unit of cleaned text: either a word or a single punctuation
// mark the voice knows how to pause on.
type token struct {
	text string
	kind tokenKind
}

// spokenPunctuation contains the punctuation runes in the model alphabet.
// Everything else that is neither a letter nor an apostrophe separates
// words and is dropped.
func spokenPunctuation(r rune) bool {
	switch r {
	case '!', '(', ')', ',', '.', ':', ';', '?', '-':
		return true
	}
	return false
}

// splitTokens breaks cleaned text into word and punctuation tokens.
// Apostrophes stay inside words so contractions survive lookup.
func splitTokens(text string) []token {
	var tokens []token
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, token{text: current.String(), kind: wordToken})
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || r == '\'':
			current.WriteRune(r)
		case spokenPunctuation(r):
			flush()
			tokens = append(tokens, token{text: string(r), kind: punctToken})
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// assemble joins per-word phonemes into one string: words separated by
// single spaces, punctuation glued to whatever precedes it. Words are
// lowercased before wordFn sees them; words that phonemize to nothing are
// dropped.
func assemble(tokens []token, wordFn func(word string) (string, error)) (string, error) {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.kind {
		case punctToken:
			b.WriteString(tok.text)
		case wordToken:
			phones, err := wordFn(strings.ToLower(tok.text))
			if err != nil {
				return "", err
			}
			if phones == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(phones)
		}
	}
	return b.String(), nil
}
