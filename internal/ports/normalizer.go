package ports

// Normalizer defines the interface for a single text normalization pass.
type Normalizer interface {
	Normalize(text string) string
}
