package fh

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nfsfhcore/unfs3fh/file"
)

// Decode resolves h into a path via a cold filesystem scan, per §4.5. The
// root directory (Len == 0) is returned without touching the filesystem.
// A handle with Len above MaxDepth is rejected before any scan.
func Decode(h Handle) (string, FileStat, error) {
	if h.Len == 0 {
		return "/", FileStat{}, nil
	}
	if int(h.Len) > MaxDepth {
		return "", FileStat{}, &Error{Kind: KindInvalidHandle, Op: "decode"}
	}

	path, stat, ok := decodeRec(&h, 0, "/")
	if !ok {
		return "", FileStat{}, &Error{Kind: KindUnresolved, Op: "decode"}
	}
	return path, stat, nil
}

// decodeRec is the recursive directory search of §4.5: prune by matching
// the ancestor-hash trail, resolve by matching (dev, ino) exactly. The
// first match readdir yields wins; entries are visited in whatever order
// the host returns them in, not sorted. h.Len counts ancestor directories
// only (codec.go's encoder excludes the object's own final component), so
// the object being resolved always lives in the directory reached at
// pos == h.Len -- every frame must still scan for it; only the prune step
// below (descending further) is gated on pos < h.Len.
func decodeRec(h *Handle, pos int, lead string) (string, FileStat, bool) {
	dir, err := os.Open(lead)
	if err != nil {
		return "", FileStat{}, false
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return "", FileStat{}, false
	}

	for _, entry := range entries {
		full := filepath.Join(lead, entry.Name())

		var dev, ino uint32
		info, statErr := os.Lstat(full)
		if statErr == nil {
			dev, ino, _ = devIno(info)
		}

		if dev == h.Dev && ino == h.Ino {
			gen := file.Generation(info, file.FDNone, full)
			return strings.TrimPrefix(full, "/"), statFromInfo(info, gen), true
		}

		name := entry.Name()
		if pos < int(h.Len) && name != "." && name != ".." && inodeHash(ino) == h.Inos[pos] {
			if r, stat, ok := decodeRec(h, pos+1, full); ok {
				return r, stat, true
			}
		}
	}

	return "", FileStat{}, false
}
