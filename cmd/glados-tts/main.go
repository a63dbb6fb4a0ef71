package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/baditaflorin/l"
	gladostts "github.com/luukhd2/Glados-text-to-speech"
	"github.com/luukhd2/Glados-text-to-speech/internal/device"
	"github.com/luukhd2/Glados-text-to-speech/pkg/speech"
)

// Default configuration
const (
	DefaultOutput  = "output.wav"
	DefaultDevice  = "cpu"
	DefaultAlpha   = 1.0
	DefaultTimeout = 5 * time.Minute
)

func main() {
	// Parse command-line flags
	text := flag.String("text", "", "Text to synthesize")
	input := flag.String("input", "", "Read the text from a file instead (\"-\" = stdin)")
	out := flag.String("out", DefaultOutput, "Output WAV file path")
	modelDir := flag.String("model-dir", "", "Model directory (default $GLADOS_TTS_MODEL_DIR, then \"models\")")
	deviceName := flag.String("device", DefaultDevice, "Inference device: cpu or cuda")
	alpha := flag.Float64("alpha", DefaultAlpha, "Speech pace multiplier (>1 slows the voice down)")
	warmUp := flag.Bool("warm-up", true, "Perform warmup synthesis on startup")
	timeout := flag.Duration("timeout", DefaultTimeout, "Synthesis deadline")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	logger, err := createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	line, err := readText(*text, *input)
	if err != nil {
		logger.Error("Failed to read input text", "error", err)
		os.Exit(1)
	}

	dev, err := device.Parse(*deviceName)
	if err != nil {
		logger.Error("Invalid device", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting GLaDOS TTS",
		"device", dev,
		"alpha", *alpha,
		"warm_up", *warmUp,
		"output", *out,
	)

	tts, err := gladostts.New(
		gladostts.WithModelDir(*modelDir),
		speech.WithDevice(dev),
		gladostts.WithAlpha(float32(*alpha)),
		gladostts.WithWarmUp(*warmUp),
		gladostts.WithLogger(logger),
	)
	if err != nil {
		logger.Error("Failed to initialize synthesizer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = gladostts.Shutdown() }()
	defer func() { _ = tts.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := tts.SynthesizeToFile(ctx, line, *out)
	if err != nil {
		logger.Error("Synthesis failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Synthesis complete",
		"path", *out,
		"chunks", result.Chunks,
		"tokens", result.TokenCount,
		"audio_duration", result.Audio.Duration(),
		"elapsed", result.Elapsed,
	)
}

// readText picks the input text from the -text flag, a file, or stdin.
func readText(text, input string) (string, error) {
	if text != "" {
		return text, nil
	}
	if input == "" {
		return "", fmt.Errorf("provide -text or -input")
	}

	var raw []byte
	var err error
	if input == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(input)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line := strings.TrimSpace(string(raw))
	if line == "" {
		return "", fmt.Errorf("input text is empty")
	}
	return line, nil
}

// createLogger builds the structured logger for the CLI
func createLogger(logFile string) (l.Logger, error) {
	// Create a logger factory
	factory := l.NewStandardFactory()

	// Configure the logger
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	// Create the logger
	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  logFile != "",
		AsyncWrite:  false,
		BufferSize:  1024 * 1024,      // 1MB
		MaxFileSize: 10 * 1024 * 1024, // 10MB
		MaxBackups:  5,
		AddSource:   false,
		Metrics:     false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
