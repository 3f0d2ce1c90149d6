//go:build linux

package file

import (
	"os"

	"golang.org/x/sys/unix"
)

// extIoctlGetVersion is EXT2_IOC_GETVERSION, aka FS_IOC_GETVERSION:
// _IOR('v', 1, long). Not exported by golang.org/x/sys/unix on every arch,
// so it's spelled out here.
const extIoctlGetVersion = 0x80047601

// getGeneration is the Linux ext-family fallback of §4.1: regular files
// and directories only, ext GETVERSION ioctl, 0 on any failure.
func getGeneration(fi os.FileInfo, fd int, path string) uint32 {
	mode := fi.Mode()
	if !mode.IsRegular() && !mode.IsDir() {
		return 0
	}

	if fd != FDNone {
		v, err := unix.IoctlGetInt(fd, extIoctlGetVersion)
		if err != nil {
			return 0
		}
		return uint32(v)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	v, err := unix.IoctlGetInt(int(f.Fd()), extIoctlGetVersion)
	if err != nil {
		return 0
	}
	return uint32(v)
}
