//go:build !linux

package feedio

import "os"

// adviseSequential is a no-op outside Linux; posix_fadvise has no
// portable equivalent elsewhere in the Go standard library.
func adviseSequential(*os.File) {}
