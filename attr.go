package fh

import (
	"os"
	"sync"
	"time"

	"github.com/nfsfhcore/unfs3fh/file"
)

// FileStat is the "most recent stat" observed by a core operation, per
// §3.3 / §4.8 -- enough for a caller to build an NFS post_op_attr reply
// without a second metadata syscall.
type FileStat struct {
	Dev     uint32
	Ino     uint32
	Gen     uint32
	Nlink   uint32
	UID     uint32
	GID     uint32
	Mode    os.FileMode
	Size    int64
	ModTime time.Time
}

func statFromInfo(fi os.FileInfo, gen uint32) FileStat {
	info, _ := file.Extract(fi)
	return FileStat{
		Dev:     info.Dev,
		Ino:     info.Ino,
		Gen:     gen,
		Nlink:   info.Nlink,
		UID:     info.UID,
		GID:     info.GID,
		Mode:    fi.Mode(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}
}

// devIno extracts the (dev, ino) pair a handle identifies an object by.
func devIno(fi os.FileInfo) (dev, ino uint32, ok bool) {
	info, ok := file.Extract(fi)
	return info.Dev, info.Ino, ok
}

// attrSlot is the single-slot attribute cache of §3.3. It is owned by a
// Core value rather than held process-wide (§9, "process-wide mutable
// state -> scoped ownership"), and is safe to use as a peek from a single
// goroutine at a time -- see Core.PeekAttr and §5 for the concurrent
// alternative.
type attrSlot struct {
	mu    sync.Mutex
	valid bool
	stat  FileStat
}

func (a *attrSlot) set(s FileStat) {
	a.mu.Lock()
	a.valid = true
	a.stat = s
	a.mu.Unlock()
}

func (a *attrSlot) invalidate() {
	a.mu.Lock()
	a.valid = false
	a.stat = FileStat{}
	a.mu.Unlock()
}

func (a *attrSlot) peek() (FileStat, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stat, a.valid
}
