//go:build darwin

package file

import (
	"os"
	"syscall"
)

// getGeneration on Darwin reads the native st_gen field directly -- no
// ioctl fallback needed, this is the "Native" mode of §4.1.
func getGeneration(fi os.FileInfo, _ int, _ string) uint32 {
	if s, ok := fi.Sys().(*syscall.Stat_t); ok {
		return uint32(s.Gen)
	}
	return 0
}
