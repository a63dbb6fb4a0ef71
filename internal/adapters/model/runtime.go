// Package model loads the pretrained voice checkpoints through ONNX
// Runtime and exposes them behind the synthesis ports.
package model

import (
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// libraryCandidates lists where the ONNX Runtime shared library usually
// lives when ONNXRUNTIME_LIB_PATH is not set. The first entry doubles as
// the default path reported in errors.
var libraryCandidates = []string{
	"/usr/local/lib/libonnxruntime.so",
	"/usr/local/lib/libonnxruntime.dylib",
	"/usr/lib/libonnxruntime.so",
	"/usr/lib/x86_64-linux-gnu/libonnxruntime.so",
	"/opt/homebrew/lib/libonnxruntime.dylib",
}

// InitRuntime loads the ONNX Runtime shared library and initializes its
// environment. The environment is process-wide; calling InitRuntime again
// while it is up is a no-op.
func InitRuntime(logger ports.Logger) error {
	if ort.IsInitialized() {
		return nil
	}

	libPath := resolveLibraryPath()
	ort.SetSharedLibraryPath(libPath)
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("failed to initialize ONNX Runtime from %s: %w (set ONNXRUNTIME_LIB_PATH to the shared library)", libPath, err)
	}
	logger.Info("ONNX Runtime initialized", "library", libPath)
	return nil
}

// DestroyRuntime tears down the process-wide runtime environment. Call it
// once, after every session has been closed.
func DestroyRuntime() error {
	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

func resolveLibraryPath() string {
	if p := os.Getenv("ONNXRUNTIME_LIB_PATH"); p != "" {
		return p
	}
	for _, candidate := range libraryCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return libraryCandidates[0]
}
