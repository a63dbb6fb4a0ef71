// Package translit folds Unicode text to a best-effort ASCII rendition so
// the downstream cleaning patterns and the phonemizer only ever see the
// character set the voice was trained on.
package translit

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/luukhd2/Glados-text-to-speech/internal/pool"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// asciiFold maps runes that survive NFKD decomposition to spoken-text
// equivalents. Typographic punctuation folds to its plain form; letters
// with no decomposition fold to their usual transliteration.
var asciiFold = map[rune]string{
	// typographic punctuation
	'‘': "'",
	'’': "'",
	'‚': "'",
	'“': "\"",
	'”': "\"",
	'„': "\"",
	'«': "\"",
	'»': "\"",
	'–': "-",
	'—': "-",
	'‑': "-",
	'…': "...",
	'⁄': "/",

	// U+00A0 no-break space
	'\u00a0': " ",

	// letters with no NFKD decomposition
	'æ': "ae",
	'Æ': "AE",
	'œ': "oe",
	'Œ': "OE",
	'ß': "ss",
	'ø': "o",
	'Ø': "O",
	'đ': "d",
	'Đ': "D",
	'ð': "d",
	'Ð': "D",
	'þ': "th",
	'Þ': "Th",
	'ł': "l",
	'Ł': "L",
}

// Transliterator implements ports.Normalizer by NFKD-decomposing the text,
// stripping combining marks and dropping whatever still falls outside
// ASCII. Text that is already ASCII passes through without allocation.
type Transliterator struct {
	bufferPool *pool.BufferPool
}

// New creates a Transliterator.
func New() ports.Normalizer {
	return &Transliterator{
		bufferPool: pool.NewBufferPool(1024),
	}
}

// Normalize folds text to ASCII.
func (t *Transliterator) Normalize(text string) string {
	if isASCII(text) {
		return text
	}

	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(stripMarks, text)
	if err != nil {
		// NFKD never fails on valid UTF-8; fall back to the raw text and
		// let the ASCII filter below do what it can.
		decomposed = text
	}

	buffer := t.bufferPool.Get()
	defer t.bufferPool.Put(buffer)
	buf := *buffer

	for _, r := range decomposed {
		switch {
		case r < utf8.RuneSelf:
			buf = append(buf, byte(r))
		default:
			if folded, ok := asciiFold[r]; ok {
				buf = append(buf, folded...)
			}
			// Anything else has no spoken ASCII form and is dropped.
		}
	}

	result := string(buf)
	*buffer = buf[:0]
	return result
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
