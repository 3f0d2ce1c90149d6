package fh

import (
	"os"

	"github.com/nfsfhcore/unfs3fh/file"
)

// Extend derives a child handle from parent, per §4.4: the trail keeps
// parent's entries and gains one more -- a hash of parent's own inode,
// the directory that is becoming the new handle's last parent.
func Extend(parent Handle, dev, ino, gen uint32) (Handle, error) {
	if parent.Len == MaxDepth {
		return Zero, &Error{Kind: KindTooDeep, Op: "extend"}
	}

	child := parent
	child.Dev, child.Ino, child.Gen = dev, ino, gen
	child.Inos[parent.Len] = inodeHash(parent.Ino)
	child.Len = parent.Len + 1

	return child, nil
}

// ExtendWithPath is the fh_extend_type convenience of §4.4: lstat path,
// require its mode to contain requiredMode, and extend parent with the
// observed dev/ino/gen. attr, if non-nil, is left populated with the
// observed stat on success or invalidated on failure.
func ExtendWithPath(parent Handle, path string, requiredMode os.FileMode, attr *attrSlot) (Handle, FileStat, error) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&requiredMode != requiredMode {
		if attr != nil {
			attr.invalidate()
		}
		if err == nil {
			err = &Error{Kind: KindNotDirectory, Op: "extend", Path: path}
		} else {
			err = &Error{Kind: KindIoError, Op: "extend", Path: path, Err: err}
		}
		return Zero, FileStat{}, err
	}

	dev, ino, ok := devIno(info)
	if !ok {
		if attr != nil {
			attr.invalidate()
		}
		return Zero, FileStat{}, &Error{Kind: KindIoError, Op: "extend", Path: path}
	}

	gen := file.Generation(info, file.FDNone, path)
	child, err := Extend(parent, dev, ino, gen)
	if err != nil {
		if attr != nil {
			attr.invalidate()
		}
		return Zero, FileStat{}, err
	}

	stat := statFromInfo(info, gen)
	if attr != nil {
		attr.set(stat)
	}
	return child, stat, nil
}
