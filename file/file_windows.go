package file

import (
	"os"
)

// getInfo returns nothing on Windows: file identity there is a
// (volume serial, file index) pair reached through a different API than
// syscall.Stat_t, and this port only targets POSIX exports.
func getInfo(info os.FileInfo) (Info, bool) {
	return Info{}, false
}

func getGeneration(info os.FileInfo, fd int, path string) uint32 {
	return 0
}
