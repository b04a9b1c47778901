// Package cpu reports the CPU capabilities of the current process.
// The transforms themselves are portable scalar code; this exists so
// the benchmark harness can attach platform context to its numbers.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the detected CPU feature set.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String returns a human-readable summary, e.g. "amd64 sse2 avx2".
func (f Features) String() string {
	parts := []string{f.Architecture}

	if f.HasSSE2 {
		parts = append(parts, "sse2")
	}

	if f.HasAVX2 {
		parts = append(parts, "avx2")
	}

	if f.HasAVX512 {
		parts = append(parts, "avx512")
	}

	if f.HasNEON {
		parts = append(parts, "neon")
	}

	return strings.Join(parts, " ")
}
