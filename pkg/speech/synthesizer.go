// Package speech exposes the end-to-end text to speech facade: it loads
// the model directory, builds the preparation pipeline and the inference
// stages, and turns English text into waveforms.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/baditaflorin/l"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/logger"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/model"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/phonemizer"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/translit"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/wavio"
	"github.com/luukhd2/Glados-text-to-speech/internal/config"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/cleaner"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/engine"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/pipeline"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/tokenizer"
	"github.com/luukhd2/Glados-text-to-speech/internal/device"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
	"github.com/luukhd2/Glados-text-to-speech/internal/warmup"
	ort "github.com/yalue/onnxruntime_go"
)

// Synthesizer provides methods to synthesize speech from English text.
// A Synthesizer serves one caller at a time; the inference sessions
// behind it are not safe for concurrent use.
type Synthesizer struct {
	engine     *engine.Engine
	preparer   ports.TextPreparer
	acoustic   ports.AcousticModel
	vocoder    ports.Vocoder
	phonemizer ports.Phonemizer
	encoder    ports.AudioEncoder
	logger     ports.Logger
	warmed     bool
}

// SynthesizerOption defines a functional option for configuring Synthesizer.
type SynthesizerOption func(*synthesizerConfig)

type synthesizerConfig struct {
	ModelDir      string
	Device        device.Device
	Alpha         float32
	SampleRate    int
	MaxChunkChars int
	ChunkSilence  time.Duration
	WarmUp        bool
	WarmUpConfig  warmup.Config
	Logger        ports.Logger
	Preparer      ports.TextPreparer
	Acoustic      ports.AcousticModel
	Vocoder       ports.Vocoder
	Encoder       ports.AudioEncoder
}

// WithModelDir sets the directory holding the model checkpoints and
// config.json. Defaults to $GLADOS_TTS_MODEL_DIR, then "models".
func WithModelDir(dir string) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.ModelDir = dir
	}
}

// WithDevice selects the inference device.
func WithDevice(d device.Device) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.Device = d
	}
}

// WithAlpha sets the speech pace multiplier. 1.0 is the voice's trained
// rate, larger values slow it down.
func WithAlpha(alpha float32) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.Alpha = alpha
	}
}

// WithSampleRate overrides the output sample rate recorded in the model
// directory. Only useful with retrained vocoders.
func WithSampleRate(rate int) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.SampleRate = rate
	}
}

// WithChunking sets the chunk length bound and the silence inserted
// between chunk waveforms.
func WithChunking(maxChars int, silence time.Duration) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.MaxChunkChars = maxChars
		cfg.ChunkSilence = silence
	}
}

// WithWarmUp enables or disables warmup synthesis on initialization.
// Enabled by default; the first real call pays the kernel setup cost
// otherwise.
func WithWarmUp(enable bool) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.Config) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// WithLogger sets a custom logger for the synthesizer.
func WithLogger(l l.Logger) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithTextPreparer sets a custom text preparation stage.
func WithTextPreparer(p ports.TextPreparer) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.Preparer = p
	}
}

// WithAcousticModel sets a custom acoustic model stage.
func WithAcousticModel(m ports.AcousticModel) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.Acoustic = m
	}
}

// WithVocoder sets a custom vocoder stage.
func WithVocoder(v ports.Vocoder) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.Vocoder = v
	}
}

// WithEncoder sets a custom audio encoder for SynthesizeToFile.
func WithEncoder(e ports.AudioEncoder) SynthesizerOption {
	return func(cfg *synthesizerConfig) {
		cfg.Encoder = e
	}
}

// New creates a new Synthesizer instance. Unless all three stages are
// injected it loads the ONNX checkpoints from the model directory, which
// requires the onnxruntime shared library to be installed.
func New(opts ...SynthesizerOption) (*Synthesizer, error) {
	cfg := &synthesizerConfig{
		Device:       device.CPU,
		ChunkSilence: -1,
		WarmUp:       true,
		WarmUpConfig: warmup.DefaultConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	// Set up logger if not provided
	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	s := &Synthesizer{
		logger:   cfg.Logger,
		preparer: cfg.Preparer,
		acoustic: cfg.Acoustic,
		vocoder:  cfg.Vocoder,
		encoder:  cfg.Encoder,
	}
	if s.encoder == nil {
		s.encoder = wavio.NewEncoder(cfg.Logger)
	}

	modelDir := config.ResolveModelDir(cfg.ModelDir)
	fileCfg, err := config.Load(modelDir)
	if err != nil {
		return nil, err
	}

	engineConfig := mergeEngineConfig(cfg, fileCfg)

	if s.preparer == nil || s.acoustic == nil || s.vocoder == nil {
		if err := s.loadModels(modelDir, fileCfg, cfg); err != nil {
			return nil, err
		}
	}

	s.engine, err = engine.New(engineConfig, cfg.Logger, s.preparer, s.acoustic, s.vocoder)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	// Perform warm-up if configured
	if cfg.WarmUp {
		s.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return s, nil
}

// mergeEngineConfig layers explicit options over the model directory's
// config.json values.
func mergeEngineConfig(opt *synthesizerConfig, fileCfg config.Config) engine.Config {
	merged := engine.Config{
		Alpha:         float32(fileCfg.Synthesis.Alpha),
		MaxChunkChars: fileCfg.Synthesis.MaxChunkChars,
		ChunkSilence:  time.Duration(fileCfg.Synthesis.ChunkSilenceMs) * time.Millisecond,
		SampleRate:    fileCfg.Audio.SampleRate,
	}
	if opt.Alpha > 0 {
		merged.Alpha = opt.Alpha
	}
	if opt.MaxChunkChars > 0 {
		merged.MaxChunkChars = opt.MaxChunkChars
	}
	if opt.ChunkSilence >= 0 {
		merged.ChunkSilence = opt.ChunkSilence
	}
	if opt.SampleRate > 0 {
		merged.SampleRate = opt.SampleRate
	}
	return merged
}

// loadModels fills in the stages that were not injected, loading the
// ONNX sessions from the model directory.
func (s *Synthesizer) loadModels(modelDir string, fileCfg config.Config, opt *synthesizerConfig) error {
	if err := model.InitRuntime(s.logger); err != nil {
		return err
	}

	sessOpts, err := ort.NewSessionOptions()
	if err != nil {
		return fmt.Errorf("failed to create session options: %w", err)
	}
	defer sessOpts.Destroy()

	if err := device.Apply(sessOpts, opt.Device, s.logger); err != nil {
		return err
	}

	paths := config.PathsIn(modelDir)

	var required []string
	if s.acoustic == nil {
		required = append(required, paths.Acoustic, paths.SpeakerEmbedding)
	}
	if s.vocoder == nil {
		required = append(required, paths.Vocoder)
	}
	if s.preparer == nil && fileCfg.Preprocessing.UsePhonemes {
		required = append(required, paths.Phonemizer, paths.PhonemizerVocab)
	}
	if err := checkModelFiles(modelDir, required); err != nil {
		return err
	}

	if s.acoustic == nil {
		acoustic, err := model.NewAcoustic(paths.Acoustic, paths.SpeakerEmbedding, s.logger, sessOpts)
		if err != nil {
			_ = s.Close()
			return err
		}
		s.acoustic = acoustic
	}

	if s.vocoder == nil {
		vocoder, err := model.NewVocoder(paths.Vocoder, s.logger, sessOpts)
		if err != nil {
			_ = s.Close()
			return err
		}
		s.vocoder = vocoder
	}

	if s.preparer == nil {
		if err := s.buildPreparer(paths, fileCfg, sessOpts); err != nil {
			_ = s.Close()
			return err
		}
	}

	return nil
}

// checkModelFiles reports the first missing checkpoint up front, naming
// the file and the directory, before ONNX Runtime produces a less helpful
// load error.
func checkModelFiles(modelDir string, paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("missing model file %s (looked in %s; set %s or use WithModelDir): %w",
				p, modelDir, config.EnvModelDir, err)
		}
	}
	return nil
}

// buildPreparer assembles the default text pipeline: english cleaner plus
// the model-backed phonemizer from the model directory.
func (s *Synthesizer) buildPreparer(paths config.ModelPaths, fileCfg config.Config, sessOpts *ort.SessionOptions) error {
	cl, err := cleaner.New(cleaner.Config{Name: fileCfg.Preprocessing.CleanerName}, s.logger, translit.New())
	if err != nil {
		return err
	}

	if fileCfg.Preprocessing.UsePhonemes {
		s.phonemizer, err = phonemizer.NewFactory().Create(phonemizer.ONNXBackend, phonemizer.ONNXConfig{
			ModelPath: paths.Phonemizer,
			VocabPath: paths.PhonemizerVocab,
			Language:  fileCfg.Preprocessing.Language,
		}, s.logger, sessOpts)
		if err != nil {
			return err
		}
	}

	pipelineConfig := pipeline.Config{
		UsePhonemes: fileCfg.Preprocessing.UsePhonemes,
		Language:    fileCfg.Preprocessing.Language,
	}
	s.preparer, err = pipeline.New(pipelineConfig, s.logger, cl, s.phonemizer, tokenizer.New())
	return err
}

// Synthesize turns text into a waveform.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (domain.Synthesis, error) {
	return s.engine.Synthesize(ctx, text)
}

// SynthesizeToFile synthesizes text and writes the waveform to a WAV file.
func (s *Synthesizer) SynthesizeToFile(ctx context.Context, text, path string) (domain.Synthesis, error) {
	result, err := s.engine.Synthesize(ctx, text)
	if err != nil {
		return domain.Synthesis{}, err
	}
	if err := s.encoder.Encode(path, result.Audio); err != nil {
		return domain.Synthesis{}, err
	}
	s.logger.Info("Wrote audio file",
		"path", path,
		"audio_duration", result.Audio.Duration(),
		"elapsed", result.Elapsed,
	)
	return result, nil
}

// WarmUp performs warmup synthesis to optimize first-call latency.
func (s *Synthesizer) WarmUp(ctx context.Context, config warmup.Config) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	warmupMgr.RegisterPreparer(s.preparer)
	warmupMgr.RegisterSynthesizer(s.engine)

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}

// Close releases the model resources held by the synthesizer. It does not
// tear down the shared onnxruntime environment; call ShutdownRuntime for
// that once all synthesizers are closed.
func (s *Synthesizer) Close() error {
	var errs []error
	if s.phonemizer != nil {
		errs = append(errs, s.phonemizer.Close())
		s.phonemizer = nil
	}
	if s.acoustic != nil {
		errs = append(errs, s.acoustic.Close())
		s.acoustic = nil
	}
	if s.vocoder != nil {
		errs = append(errs, s.vocoder.Close())
		s.vocoder = nil
	}
	return errors.Join(errs...)
}

// ShutdownRuntime tears down the shared onnxruntime environment. Call it
// once at process exit, after every Synthesizer has been closed.
func ShutdownRuntime() error {
	return model.DestroyRuntime()
}
