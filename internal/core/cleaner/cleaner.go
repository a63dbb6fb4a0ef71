// Package cleaner rewrites raw English text into the plain spoken form the
// phonemizer expects: ASCII transliteration, spoken-number expansion and
// abbreviation expansion. The recipe mirrors the normalization the acoustic
// model was trained with, so changing it degrades pronunciation.
package cleaner

import (
	"context"
	"fmt"
	"strings"

	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// Names of the supported cleaning recipes.
const (
	// CleanerEnglish transliterates to ASCII and expands numbers and
	// abbreviations. This is the recipe the voice was trained with.
	CleanerEnglish = "english_cleaners"
	// CleanerNone passes text through untouched.
	CleanerNone = "no_cleaners"
)

// Config holds configuration for a Cleaner.
type Config struct {
	// Name selects the cleaning recipe, CleanerEnglish or CleanerNone.
	Name string
}

// DefaultConfig returns the configuration the pretrained voice expects.
func DefaultConfig() Config {
	return Config{Name: CleanerEnglish}
}

// Validate checks the configuration parameters.
func (c Config) Validate() error {
	switch c.Name {
	case CleanerEnglish, CleanerNone:
		return nil
	default:
		return fmt.Errorf("unsupported cleaner %q (supported: %q, %q)", c.Name, CleanerEnglish, CleanerNone)
	}
}

// Cleaner applies the configured cleaning recipe to input text.
type Cleaner struct {
	config   Config
	logger   ports.Logger
	translit ports.Normalizer
}

// New creates a Cleaner. The transliterator is only consulted by the
// English recipe; it may be nil when the recipe is CleanerNone.
func New(config Config, logger ports.Logger, translit ports.Normalizer) (*Cleaner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Name == CleanerEnglish && translit == nil {
		return nil, fmt.Errorf("cleaner %q requires a transliterator", CleanerEnglish)
	}
	return &Cleaner{config: config, logger: logger, translit: translit}, nil
}

// Clean runs the cleaning passes over text. The passes are ordered:
// transliteration first so the number and abbreviation patterns only ever
// see ASCII, numbers before abbreviations so "3rd St." reads "third saint".
func (c *Cleaner) Clean(ctx context.Context, text string) (string, error) {
	if c.config.Name == CleanerNone {
		return text, nil
	}

	select {
	case <-ctx.Done():
		c.logger.Warn("Cleaning canceled", "error", ctx.Err())
		return "", ctx.Err()
	default:
	}

	text = c.translit.Normalize(text)
	text = NormalizeNumbers(text)
	text = ExpandAbbreviations(text)
	return text, nil
}

// CollapseWhitespace folds every run of whitespace into a single space and
// trims the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
