// Package device resolves where model inference runs and applies the
// choice to ONNX Runtime session options.
package device

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// Device names an execution target for inference.
type Device string

const (
	// CPU runs inference on the host CPU.
	CPU Device = "cpu"
	// CUDA runs inference on the first CUDA GPU through the CUDA
	// execution provider. Requires a CUDA-enabled ONNX Runtime build.
	CUDA Device = "cuda"
)

// Parse maps a user-supplied device name to a Device.
func Parse(s string) (Device, error) {
	switch Device(strings.ToLower(strings.TrimSpace(s))) {
	case CPU:
		return CPU, nil
	case CUDA:
		return CUDA, nil
	}
	return "", fmt.Errorf("unsupported device %q (supported: %q, %q)", s, CPU, CUDA)
}

// Info describes the host CPU as seen by inference thread sizing.
type Info struct {
	Brand         string
	PhysicalCores int
	LogicalCores  int
	AVX2          bool
	AVX512        bool
}

// DetectCPU inspects the host CPU.
func DetectCPU() Info {
	return Info{
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		AVX2:          cpuid.CPU.Supports(cpuid.AVX2),
		AVX512:        cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ),
	}
}

// Apply configures session options for the device. For the CPU the
// intra-op thread count follows the physical core count; synthesis is
// sequential so inter-op parallelism stays at one.
func Apply(options *ort.SessionOptions, dev Device, logger ports.Logger) error {
	switch dev {
	case CPU:
		info := DetectCPU()
		threads := info.PhysicalCores
		if threads < 1 {
			// Virtualized or non-x86 hosts may not expose topology.
			threads = runtime.NumCPU()
		}
		if err := options.SetIntraOpNumThreads(threads); err != nil {
			return fmt.Errorf("failed to set intra-op threads: %w", err)
		}
		if err := options.SetInterOpNumThreads(1); err != nil {
			return fmt.Errorf("failed to set inter-op threads: %w", err)
		}
		logger.Info("Using CPU for inference",
			"brand", info.Brand,
			"threads", threads,
			"avx2", info.AVX2,
			"avx512", info.AVX512)
		return nil

	case CUDA:
		cudaOpts, err := ort.NewCUDAProviderOptions()
		if err != nil {
			return fmt.Errorf("CUDA provider unavailable: %w", err)
		}
		defer cudaOpts.Destroy()
		if err := cudaOpts.Update(map[string]string{"device_id": "0"}); err != nil {
			return fmt.Errorf("failed to configure CUDA provider: %w", err)
		}
		if err := options.AppendExecutionProviderCUDA(cudaOpts); err != nil {
			return fmt.Errorf("failed to enable CUDA execution: %w", err)
		}
		logger.Info("Using CUDA for inference", "device_id", 0)
		return nil
	}
	return fmt.Errorf("unsupported device %q", dev)
}
