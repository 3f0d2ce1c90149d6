package file

import (
	"os"
)

// getInfo returns nothing on Plan 9: there is no POSIX stat structure,
// and uids/gids are strings rather than numeric ids.
func getInfo(info os.FileInfo) (Info, bool) {
	return Info{}, false
}

// getGeneration has no native field and no ext ioctl on Plan 9.
func getGeneration(info os.FileInfo, fd int, path string) uint32 {
	return 0
}
