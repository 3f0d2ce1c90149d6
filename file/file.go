// Package file extracts the OS-level stat fields the filehandle core needs
// (device, inode, link count, ownership, generation) from an os.FileInfo,
// isolating the platform-conditional parts of that extraction behind a
// small set of per-GOOS build-tagged files.
package file

import "os"

// Info holds the (dev, ino, nlink, uid, gid) quintet that os.FileInfo
// doesn't expose uniformly across platforms.
type Info struct {
	Dev   uint32
	Ino   uint32
	Nlink uint32
	UID   uint32
	GID   uint32
}

// Extract pulls Info out of fi's Sys() value. ok is false on platforms
// without a POSIX stat structure (Windows, Plan 9) or when fi.Sys() is
// something else entirely.
func Extract(fi os.FileInfo) (Info, bool) {
	return getInfo(fi)
}

// FDNone tells Generation no open descriptor is available, so it should
// open path itself if it needs one.
const FDNone = -1

// Generation returns the inode generation number for fi: a native stat
// field where the host exposes one, an ext-family ioctl on Linux, or the
// inode number itself as a last resort. Never fails hard -- returns 0 on
// any error, since the generation is an advisory discriminator, not a
// correctness requirement.
func Generation(fi os.FileInfo, fd int, path string) uint32 {
	return getGeneration(fi, fd, path)
}
