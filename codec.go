package fh

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nfsfhcore/unfs3fh/file"
)

// Encode composes a handle for path, per §4.2. If requireDir is set and
// the object at path isn't a directory, it returns NotDirectory.
func Encode(path string, requireDir bool) (Handle, FileStat, error) {
	clean := filepath.Clean(path)

	info, err := os.Lstat(clean)
	if err != nil {
		return Zero, FileStat{}, &Error{Kind: KindIoError, Op: "encode", Path: clean, Err: err}
	}
	if requireDir && !info.IsDir() {
		return Zero, FileStat{}, &Error{Kind: KindNotDirectory, Op: "encode", Path: clean}
	}

	dev, ino, ok := devIno(info)
	if !ok {
		return Zero, FileStat{}, &Error{Kind: KindIoError, Op: "encode", Path: clean}
	}

	gen := file.Generation(info, file.FDNone, clean)
	h := Handle{Dev: dev, Ino: ino, Gen: gen}
	stat := statFromInfo(info, gen)

	if clean == "/" {
		return h, stat, nil
	}

	// Walk every ancestor directory between the root and the object's
	// parent -- not the root itself, not the object's own final
	// component -- hashing each one's inode into the trail.
	ancestors := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	ancestors = ancestors[:len(ancestors)-1]
	if len(ancestors) > MaxDepth {
		return Zero, FileStat{}, &Error{Kind: KindTooDeep, Op: "encode", Path: clean}
	}

	prefix := ""
	for i, part := range ancestors {
		prefix += "/" + part
		pinfo, err := os.Lstat(prefix)
		if err != nil {
			return Zero, FileStat{}, &Error{Kind: KindIoError, Op: "encode", Path: prefix, Err: err}
		}
		_, pino, ok := devIno(pinfo)
		if !ok {
			return Zero, FileStat{}, &Error{Kind: KindIoError, Op: "encode", Path: prefix}
		}
		h.Inos[i] = inodeHash(pino)
	}
	h.Len = uint8(len(ancestors))

	return h, stat, nil
}
