// Package fh implements the filehandle core of a user-space NFSv3 server:
// translating local filesystem paths into small, persistent opaque handles
// and back, with an LRU path cache and a piggybacked attribute cache to
// keep that translation cheap.
package fh

// MaxDepth bounds the number of ancestor-directory hashes a handle can
// carry. A handle at full depth serializes to headerSize+MaxDepth = 77
// bytes.
const MaxDepth = 64

// CacheEntries is the default path-cache capacity.
const CacheEntries = 4096

// headerSize is the fixed portion of the wire layout: dev(4) + ino(4) +
// gen(4) + len(1), per §6.
const headerSize = 13

// Handle is a packed record identifying a filesystem object: enough to
// find it again after a restart or after the path it was created from has
// moved, without the server keeping any table of outstanding handles.
type Handle struct {
	Dev  uint32
	Ino  uint32
	Gen  uint32
	Len  uint8
	Inos [MaxDepth]byte
}

// Zero is the canonical invalid handle: all-zero dev/ino marks an error
// return, per §3.1.
var Zero = Handle{}

// Valid reports whether h identifies a real object. The all-zero handle
// (zero dev and zero ino) is the canonical invalid value.
func (h Handle) Valid() bool {
	return h.Dev != 0 && h.Ino != 0
}

// SerializedLen returns h's on-wire length in bytes.
func (h Handle) SerializedLen() int {
	return headerSize + int(h.Len)
}

// FhValid mirrors Handle.Valid as a free function, for callers that only
// have the exported name from §6 in hand.
func FhValid(h Handle) bool {
	return h.Valid()
}

// FhLen returns h's serialized length, per §6.
func FhLen(h Handle) int {
	return h.SerializedLen()
}
