package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitShortText(t *testing.T) {
	chunks := Split("Hello there.", 0)
	if len(chunks) != 1 || chunks[0] != "Hello there." {
		t.Errorf("Split = %q, want single unchanged chunk", chunks)
	}
}

func TestSplitEmptyText(t *testing.T) {
	if chunks := Split("   \n\t ", 0); chunks != nil {
		t.Errorf("Split on whitespace = %q, want nil", chunks)
	}
}

func TestSplitParagraphs(t *testing.T) {
	chunks := Split("First paragraph here.\n\nSecond paragraph here.", 0)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2: %q", len(chunks), chunks)
	}
	if chunks[0] != "First paragraph here." || chunks[1] != "Second paragraph here." {
		t.Errorf("unexpected chunks: %q", chunks)
	}
}

func TestSplitPacksSentences(t *testing.T) {
	text := "One sentence here. Two sentence here. Three sentence here."
	chunks := Split(text, 40)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2: %q", len(chunks), chunks)
	}
	if chunks[0] != "One sentence here. Two sentence here." {
		t.Errorf("chunks[0] = %q", chunks[0])
	}
	if chunks[1] != "Three sentence here." {
		t.Errorf("chunks[1] = %q", chunks[1])
	}
}

func TestSplitKeepsAbbreviationsTogether(t *testing.T) {
	chunks := Split("Dr. Smith arrived today. He sat down.", 25)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2: %q", len(chunks), chunks)
	}
	if chunks[0] != "Dr. Smith arrived today." {
		t.Errorf("abbreviation split apart: %q", chunks[0])
	}
}

func TestSplitFallsBackToCommas(t *testing.T) {
	chunks := Split("aaaa aaaa, bbbb bbbb, cccc", 12)
	want := []string{"aaaa aaaa", "bbbb bbbb", "cccc"}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d: %q", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunks[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplitFallsBackToWords(t *testing.T) {
	chunks := Split("one two three four", 8)
	want := []string{"one two", "three", "four"}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d: %q", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunks[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplitRespectsBudget(t *testing.T) {
	text := strings.Repeat("This is a fairly normal sentence of some length. ", 40)
	const max = 120
	chunks := Split(text, max)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c == "" {
			t.Errorf("chunk %d is empty", i)
		}
		if n := utf8.RuneCountInString(c); n > max {
			t.Errorf("chunk %d has %d runes, budget is %d: %q", i, n, max, c)
		}
	}
}

func TestSplitPreservesWords(t *testing.T) {
	text := "Alpha beta gamma, delta epsilon. Zeta eta theta iota kappa lambda."
	joined := strings.Join(Split(text, 20), " ")
	for _, word := range []string{"Alpha", "epsilon", "lambda"} {
		if !strings.Contains(joined, word) {
			t.Errorf("word %q lost during chunking: %q", word, joined)
		}
	}
}
