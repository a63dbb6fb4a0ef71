// Package chunker splits long input into pieces small enough for the
// acoustic model's attention window. Splits prefer paragraph boundaries,
// then sentence boundaries, then commas, and fall back to single spaces for
// pathological run-on text.
package chunker

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxChars is the chunk budget in runes. Inputs longer than this are
// split before synthesis; the pretrained model loses attention alignment on
// longer sequences and starts to mumble.
const DefaultMaxChars = 300

var (
	paragraphRe   = regexp.MustCompile(`\n\s*\n`)
	sentenceEndRe = regexp.MustCompile(`([.!?])\s+`)
)

// nonTerminalDots lists dotted forms whose period does not end a sentence.
var nonTerminalDots = []string{
	"Mr.", "Mrs.", "Dr.", "Drs.", "St.", "Co.", "Jr.", "Maj.", "Gen.",
	"Rev.", "Lt.", "Hon.", "Sgt.", "Capt.", "Esq.", "Ltd.", "Col.", "Ft.",
	"Ms.", "Prof.", "Sr.", "vs.", "etc.", "i.e.", "e.g.", "Ph.D.",
}

// Split breaks text into chunks of at most maxChars runes. maxChars <= 0
// selects DefaultMaxChars. Whitespace at chunk edges is trimmed and empty
// chunks are never returned; an all-whitespace input yields nil.
func Split(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	for _, para := range paragraphRe.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) <= maxChars {
			chunks = append(chunks, para)
			continue
		}
		chunks = appendSentences(chunks, para, maxChars)
	}
	return chunks
}

// packer accumulates pieces into chunks no longer than max runes, joining
// pieces within a chunk by sep.
type packer struct {
	chunks []string
	cur    strings.Builder
	curLen int
	max    int
	sep    string
}

func (p *packer) add(piece string) {
	n := utf8.RuneCountInString(piece)
	sepLen := utf8.RuneCountInString(p.sep)
	if p.curLen > 0 && p.curLen+sepLen+n > p.max {
		p.flush()
	}
	if p.curLen > 0 {
		p.cur.WriteString(p.sep)
		p.curLen += sepLen
	}
	p.cur.WriteString(piece)
	p.curLen += n
}

func (p *packer) flush() {
	if s := strings.TrimSpace(p.cur.String()); s != "" {
		p.chunks = append(p.chunks, s)
	}
	p.cur.Reset()
	p.curLen = 0
}

func appendSentences(chunks []string, para string, maxChars int) []string {
	p := &packer{chunks: chunks, max: maxChars, sep: " "}
	for _, sentence := range splitSentences(para) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if utf8.RuneCountInString(sentence) > maxChars {
			p.flush()
			p.chunks = appendClauses(p.chunks, sentence, maxChars)
			continue
		}
		p.add(sentence)
	}
	p.flush()
	return p.chunks
}

func appendClauses(chunks []string, sentence string, maxChars int) []string {
	p := &packer{chunks: chunks, max: maxChars, sep: ", "}
	for _, part := range strings.Split(sentence, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if utf8.RuneCountInString(part) > maxChars {
			p.flush()
			p.chunks = appendWords(p.chunks, part, maxChars)
			continue
		}
		p.add(part)
	}
	p.flush()
	return p.chunks
}

// appendWords is the last resort for text with no usable punctuation. A
// single word longer than maxChars is emitted whole.
func appendWords(chunks []string, part string, maxChars int) []string {
	p := &packer{chunks: chunks, max: maxChars, sep: " "}
	for _, word := range strings.Fields(part) {
		p.add(word)
	}
	p.flush()
	return p.chunks
}

// splitSentences splits on ". ", "! " and "? " boundaries. The regexp
// package has no lookbehind, so boundaries whose head ends in a known
// dotted abbreviation are rejected after the fact instead.
func splitSentences(text string) []string {
	matches := sentenceEndRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	var sentences []string
	last := 0
	for _, m := range matches {
		head := strings.TrimSpace(text[last : m[0]+1])
		if endsWithNonTerminalDot(head) {
			continue
		}
		sentences = append(sentences, text[last:m[1]])
		last = m[1]
	}
	if last < len(text) {
		sentences = append(sentences, text[last:])
	}
	return sentences
}

func endsWithNonTerminalDot(head string) bool {
	for _, abbr := range nonTerminalDots {
		if !strings.HasSuffix(head, abbr) {
			continue
		}
		if len(head) == len(abbr) {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(head[:len(head)-len(abbr)])
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
