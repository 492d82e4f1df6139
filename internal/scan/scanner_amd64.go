//go:build amd64 && !nocpuid

package scan

import (
	"github.com/klauspost/cpuid/v2"
	sysCPU "golang.org/x/sys/cpu"
)

// currentBackend picks the word-parallel scanner when the CPU reports
// SSE4.2, cross-checked against a second detection source. Both must
// agree the hardware is capable before we leave the always-correct
// scalar path; a mismatch (virtualized or emulated CPUID) is treated
// conservatively as "no".
var currentBackend = selectBackend()

func selectBackend() func([]byte, int, int, [4]byte, int) int {
	if sysCPU.X86.HasSSE42 && cpuid.CPU.Supports(cpuid.SSE42) {
		return scanWord
	}
	return scanScalar
}
