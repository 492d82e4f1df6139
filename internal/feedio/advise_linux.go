//go:build linux

package feedio

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential hints to the kernel that the file will be read once,
// start to end, which is exactly the access pattern csvc17's feed
// protocol produces. Best-effort: errors are ignored, matching the
// reference posix_fadvise callers that treat it as a pure hint.
func adviseSequential(f *os.File) {
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
