package benchmark

import (
	"context"
	"strings"
	"testing"

	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/phonemizer"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/translit"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/chunker"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/cleaner"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/pipeline"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/tokenizer"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Close() error                                   { return nil }

// generateText creates a text of the specified size by repeating a sample
// line that exercises number, currency and abbreviation expansion.
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "Dr. Glados ran 1,024 tests on the 3rd subject and billed $2.50 for the cake. "
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
	}

	if sb.Len() > size {
		return sb.String()[:size]
	}
	return sb.String()
}

func newEnglishCleaner(b *testing.B) ports.TextCleaner {
	b.Helper()
	c, err := cleaner.New(cleaner.DefaultConfig(), noopLogger{}, translit.New())
	if err != nil {
		b.Fatal(err)
	}
	return c
}

// BenchmarkCleaners compares the cleaning passes on different input sizes
func BenchmarkCleaners(b *testing.B) {
	smallText := generateText(100)
	mediumText := generateText(10000)

	ctx := context.Background()

	benchmarks := []struct {
		name        string
		cleanerName string
		input       string
	}{
		{"English-Small", cleaner.CleanerEnglish, smallText},
		{"English-Medium", cleaner.CleanerEnglish, mediumText},
		{"None-Small", cleaner.CleanerNone, smallText},
		{"None-Medium", cleaner.CleanerNone, mediumText},
	}

	for _, bm := range benchmarks {
		c, err := cleaner.New(cleaner.Config{Name: bm.cleanerName}, noopLogger{}, translit.New())
		if err != nil {
			b.Fatal(err)
		}

		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))

			for i := 0; i < b.N; i++ {
				_, _ = c.Clean(ctx, bm.input)
			}
		})
	}
}

// BenchmarkTransliterate measures the ASCII fold on plain and accented input
func BenchmarkTransliterate(b *testing.B) {
	tr := translit.New()
	plain := generateText(1000)
	accented := strings.Repeat("Café naïve — résumé №42 ", 40)

	b.Run("ASCIIFastPath", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(plain)))

		for i := 0; i < b.N; i++ {
			_ = tr.Normalize(plain)
		}
	})

	b.Run("Accented", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(accented)))

		for i := 0; i < b.N; i++ {
			_ = tr.Normalize(accented)
		}
	})
}

// BenchmarkPhonemizeLexicon measures the rule-based phonemizer
func BenchmarkPhonemizeLexicon(b *testing.B) {
	ph := phonemizer.NewLexicon()
	ctx := context.Background()
	line := "hello doctor, the cake is a lie and the test subject knows it."

	b.ReportAllocs()
	b.SetBytes(int64(len(line)))

	for i := 0; i < b.N; i++ {
		_, _ = ph.Phonemize(ctx, line)
	}
}

// BenchmarkTokenizer measures phoneme encoding and filtering
func BenchmarkTokenizer(b *testing.B) {
	tok := tokenizer.New()
	phonemes := strings.Repeat("hɛˈloʊ wɝld, ðɪs ɪz ə tɛst. ", 20)

	b.Run("Encode", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(phonemes)))

		for i := 0; i < b.N; i++ {
			_ = tok.Encode(phonemes)
		}
	})

	b.Run("Filter", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(phonemes)))

		for i := 0; i < b.N; i++ {
			_ = tok.Filter(phonemes)
		}
	})
}

// BenchmarkChunker measures text splitting on long input
func BenchmarkChunker(b *testing.B) {
	longText := generateText(20000)

	b.ReportAllocs()
	b.SetBytes(int64(len(longText)))

	for i := 0; i < b.N; i++ {
		_ = chunker.Split(longText, chunker.DefaultMaxChars)
	}
}

// BenchmarkPipelinePrepare measures the full text preparation path with the
// rule-based phonemizer
func BenchmarkPipelinePrepare(b *testing.B) {
	proc, err := pipeline.New(pipeline.DefaultConfig(), noopLogger{},
		newEnglishCleaner(b), phonemizer.NewLexicon(), tokenizer.New())
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()
	line := "Mr. Johnson paid $1,500 for 2 portal guns on March 3rd."

	b.ReportAllocs()
	b.SetBytes(int64(len(line)))

	for i := 0; i < b.N; i++ {
		_, _ = proc.Prepare(ctx, line)
	}
}
