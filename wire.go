package fh

import "encoding/binary"

// MarshalBinary writes h in the little-endian, packed wire layout of §6:
// dev, ino, gen, len, then len bytes of inos trail.
func (h Handle) MarshalBinary() []byte {
	buf := make([]byte, h.SerializedLen())
	binary.LittleEndian.PutUint32(buf[0:4], h.Dev)
	binary.LittleEndian.PutUint32(buf[4:8], h.Ino)
	binary.LittleEndian.PutUint32(buf[8:12], h.Gen)
	buf[12] = h.Len
	copy(buf[headerSize:], h.Inos[:h.Len])
	return buf
}

// Validate checks a received handle buffer for structural validity, per
// §4.3: long enough for the fixed header, and declared length matching
// the buffer's actual length exactly. It does not check dev/ino -- that
// is the resolver's job.
func Validate(b []byte) error {
	if len(b) < headerSize {
		return &Error{Kind: KindInvalidHandle, Op: "validate"}
	}
	declared := headerSize + int(b[12])
	if len(b) != declared {
		return &Error{Kind: KindInvalidHandle, Op: "validate"}
	}
	return nil
}

// NfhValid reports whether b has a structurally valid wire length, per
// the nfh_valid check of §6.
func NfhValid(b []byte) bool {
	return Validate(b) == nil
}

// UnmarshalHandle parses a wire-format handle, validating it first. A
// declared trail length above MaxDepth is rejected as an invalid handle.
func UnmarshalHandle(b []byte) (Handle, error) {
	if err := Validate(b); err != nil {
		return Zero, err
	}
	if int(b[12]) > MaxDepth {
		return Zero, &Error{Kind: KindInvalidHandle, Op: "unmarshal"}
	}
	var h Handle
	h.Dev = binary.LittleEndian.Uint32(b[0:4])
	h.Ino = binary.LittleEndian.Uint32(b[4:8])
	h.Gen = binary.LittleEndian.Uint32(b[8:12])
	h.Len = b[12]
	copy(h.Inos[:h.Len], b[headerSize:])
	return h, nil
}
