//go:build darwin || dragonfly || freebsd || linux || nacl || netbsd || openbsd || solaris || wasm
// +build darwin dragonfly freebsd linux nacl netbsd openbsd solaris wasm

package file

import (
	"os"
	"syscall"
)

func getInfo(fi os.FileInfo) (Info, bool) {
	s, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return Info{}, false
	}
	return Info{
		Dev:   uint32(s.Dev),
		Ino:   uint32(s.Ino),
		Nlink: uint32(s.Nlink),
		UID:   s.Uid,
		GID:   s.Gid,
	}, true
}
