package phonemizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// ONNXConfig holds configuration for the pretrained G2P backend.
type ONNXConfig struct {
	// ModelPath is the forward grapheme-to-phoneme model, for example
	// en_us_cmudict_ipa_forward.onnx.
	ModelPath string
	// VocabPath is the JSON sidecar listing the model's grapheme and
	// phoneme inventories. Empty selects ModelPath + ".json".
	VocabPath string
	// Language is checked against the sidecar when both are set.
	Language string
	// InputName and OutputName override the graph's tensor names.
	// Empty selects "text" and "phonemes".
	InputName  string
	OutputName string
}

// sidecar mirrors the vocabulary JSON shipped next to the G2P model. The
// grapheme and phoneme lists are ordered by model ID; bracketed entries
// such as "<pad>" are decoder controls, not output symbols.
type sidecar struct {
	Language  string   `json:"language"`
	Graphemes []string `json:"graphemes"`
	Phonemes  []string `json:"phonemes"`
}

// ONNX runs the pretrained forward grapheme-to-phoneme model word by word,
// with a pronunciation cache in front. It produces the IPA inventory the
// acoustic model was trained against, stress marks included, which the
// embedded lexicon cannot.
type ONNX struct {
	session     *ort.DynamicAdvancedSession
	logger      ports.Logger
	graphemeIDs map[rune]int64
	phonemes    []string

	mu    sync.Mutex
	cache map[string]string
}

// NewONNX loads the G2P model and its vocabulary sidecar. The session
// options control threading and execution providers; nil uses the runtime
// defaults.
func NewONNX(config ONNXConfig, logger ports.Logger, options *ort.SessionOptions) (*ONNX, error) {
	vocabPath := config.VocabPath
	if vocabPath == "" {
		vocabPath = config.ModelPath + ".json"
	}

	raw, err := os.ReadFile(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read phonemizer vocabulary: %w", err)
	}
	var sc sidecar
	if err := json.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse phonemizer vocabulary %s: %w", vocabPath, err)
	}
	if len(sc.Graphemes) == 0 || len(sc.Phonemes) == 0 {
		return nil, fmt.Errorf("phonemizer vocabulary %s is missing graphemes or phonemes", vocabPath)
	}
	if config.Language != "" && sc.Language != "" && config.Language != sc.Language {
		return nil, fmt.Errorf("phonemizer model is for language %q, pipeline wants %q", sc.Language, config.Language)
	}

	graphemeIDs := make(map[rune]int64, len(sc.Graphemes))
	for id, g := range sc.Graphemes {
		if utf8.RuneCountInString(g) != 1 {
			// Control entries like "<pad>" never appear in input words.
			continue
		}
		r, _ := utf8.DecodeRuneInString(g)
		graphemeIDs[r] = int64(id)
	}

	inputName := config.InputName
	if inputName == "" {
		inputName = "text"
	}
	outputName := config.OutputName
	if outputName == "" {
		outputName = "phonemes"
	}

	session, err := ort.NewDynamicAdvancedSession(config.ModelPath,
		[]string{inputName}, []string{outputName}, options)
	if err != nil {
		return nil, fmt.Errorf("failed to load phonemizer model %s: %w", config.ModelPath, err)
	}

	logger.Info("Phonemizer model loaded",
		"path", config.ModelPath,
		"language", sc.Language,
		"graphemes", len(sc.Graphemes),
		"phonemes", len(sc.Phonemes))

	return &ONNX{
		session:     session,
		logger:      logger,
		graphemeIDs: graphemeIDs,
		phonemes:    sc.Phonemes,
		cache:       make(map[string]string),
	}, nil
}

// Phonemize converts cleaned text to an IPA phoneme string.
func (p *ONNX) Phonemize(ctx context.Context, text string) (string, error) {
	return assemble(splitTokens(text), func(word string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		return p.word(word)
	})
}

// Close releases the model session. The ONNX backend must not be used
// after Close.
func (p *ONNX) Close() error {
	if p.session == nil {
		return nil
	}
	err := p.session.Destroy()
	p.session = nil
	return err
}

func (p *ONNX) word(w string) (string, error) {
	p.mu.Lock()
	cached, ok := p.cache[w]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	ids := make([]int64, 0, utf8.RuneCountInString(w))
	for _, r := range w {
		if id, ok := p.graphemeIDs[r]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "", nil
	}

	input, err := ort.NewTensor([]int64{1, int64(len(ids))}, ids)
	if err != nil {
		return "", fmt.Errorf("failed to create phonemizer input: %w", err)
	}
	defer input.Destroy()

	outputs := []ort.Value{nil}
	if err := p.session.Run([]ort.Value{input}, outputs); err != nil {
		return "", fmt.Errorf("phonemizer inference failed for %q: %w", w, err)
	}
	logits, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return "", fmt.Errorf("phonemizer returned unexpected output type %T", outputs[0])
	}
	defer logits.Destroy()

	phones, err := p.decode(logits)
	if err != nil {
		return "", fmt.Errorf("word %q: %w", w, err)
	}

	p.mu.Lock()
	p.cache[w] = phones
	p.mu.Unlock()
	return phones, nil
}

// decode picks the best phoneme per output step and collapses the repeats
// the forward model emits when one phoneme spans several steps. Control
// entries are skipped.
func (p *ONNX) decode(logits *ort.Tensor[float32]) (string, error) {
	shape := logits.GetShape()
	if len(shape) != 3 || shape[0] != 1 {
		return "", fmt.Errorf("unexpected phonemizer output shape %v", shape)
	}
	steps, classes := int(shape[1]), int(shape[2])
	if classes != len(p.phonemes) {
		return "", fmt.Errorf("phonemizer output has %d classes, vocabulary has %d", classes, len(p.phonemes))
	}

	data := logits.GetData()
	var b strings.Builder
	prev := -1
	for t := 0; t < steps; t++ {
		row := data[t*classes : (t+1)*classes]
		best := 0
		for c := 1; c < classes; c++ {
			if row[c] > row[best] {
				best = c
			}
		}
		if best == prev {
			continue
		}
		prev = best

		sym := p.phonemes[best]
		if sym == "" || strings.HasPrefix(sym, "<") {
			continue
		}
		b.WriteString(sym)
	}
	return b.String(), nil
}
