//go:build dragonfly || freebsd || nacl || netbsd || openbsd || solaris || wasm
// +build dragonfly freebsd nacl netbsd openbsd solaris wasm

package file

import "os"

// getGeneration on platforms with neither a native generation field nor
// an ext ioctl: the inode number stands in, per §4.1 mode 3. Acceptable
// because the generation is advisory -- the handle still carries ino and
// the directory trail.
func getGeneration(fi os.FileInfo, _ int, _ string) uint32 {
	info, ok := getInfo(fi)
	if !ok {
		return 0
	}
	return info.Ino
}
