// Package tokenizer maps IPA phoneme strings onto the fixed integer alphabet
// the pretrained acoustic model expects. The mapping is a static lookup table;
// symbols outside the alphabet are silently dropped on both encode and decode.
package tokenizer

import "strings"

// Tokenizer converts between phoneme strings and phoneme ID sequences.
type Tokenizer struct {
	symbolToID map[rune]int64
	idToSymbol map[int64]rune
	size       int
}

// New creates a tokenizer over the model's phoneme alphabet.
func New() *Tokenizer {
	symbols := alphabet()
	t := &Tokenizer{
		symbolToID: make(map[rune]int64, len(symbols)),
		idToSymbol: make(map[int64]rune, len(symbols)),
		size:       len(symbols),
	}
	for i, s := range symbols {
		t.symbolToID[s] = int64(i)
		t.idToSymbol[int64(i)] = s
	}
	return t
}

// Encode maps each known phoneme rune to its ID, skipping unknown runes.
func (t *Tokenizer) Encode(text string) []int64 {
	ids := make([]int64, 0, len([]rune(text)))
	for _, r := range text {
		if id, ok := t.symbolToID[r]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Decode maps IDs back to their phoneme runes, skipping unknown IDs.
func (t *Tokenizer) Decode(ids []int64) string {
	var sb strings.Builder
	for _, id := range ids {
		if s, ok := t.idToSymbol[id]; ok {
			sb.WriteRune(s)
		}
	}
	return sb.String()
}

// Filter removes every rune that is not part of the phoneme alphabet.
// Phonemizer backends may emit stress or length marks the model never saw;
// those must not reach Encode.
func (t *Tokenizer) Filter(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if _, ok := t.symbolToID[r]; ok {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Contains reports whether the rune is part of the phoneme alphabet.
func (t *Tokenizer) Contains(r rune) bool {
	_, ok := t.symbolToID[r]
	return ok
}

// Size returns the number of symbols in the alphabet.
func (t *Tokenizer) Size() int {
	return t.size
}
