package fh

import "fmt"

// Kind enumerates the error surfaces a core operation can return, per §7.
type Kind int

// Error kinds, per the table in §7.
const (
	// KindInvalidHandle covers Validate and UnmarshalHandle failures, and
	// handles whose Len exceeds MaxDepth.
	KindInvalidHandle Kind = iota
	// KindUnresolved means the resolver scanned and found no match.
	KindUnresolved
	// KindNotDirectory means Encode was called with requireDir and the
	// object isn't one.
	KindNotDirectory
	// KindTooDeep means Encode or Extend would exceed MaxDepth.
	KindTooDeep
	// KindIoError wraps any underlying lstat/readdir/open/ioctl failure.
	KindIoError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidHandle:
		return "invalid handle"
	case KindUnresolved:
		return "unresolved"
	case KindNotDirectory:
		return "not a directory"
	case KindTooDeep:
		return "too deep"
	case KindIoError:
		return "I/O error"
	default:
		return "unknown"
	}
}

// Error is the error type every exported core operation returns. Kind
// classifies the failure for StatusFor; Op and Path identify where it
// happened; Err, if set, is the underlying cause. The one exception is
// Core.EncodeCached and Core.DecodeCached, which return ctx.Err() as is
// when ctx is already done.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Path != "":
		return fmt.Sprintf("fh: %s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
	case e.Path != "":
		return fmt.Sprintf("fh: %s %s: %s", e.Op, e.Path, e.Kind)
	default:
		return fmt.Sprintf("fh: %s: %s", e.Op, e.Kind)
	}
}

// Unwrap exposes the underlying I/O error, if any, to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err is a *Error of the same Kind, so callers can
// write errors.Is(err, fh.ErrUnresolved) against the sentinels below.
func (e *Error) Is(target error) bool {
	o, ok := target.(*Error)
	return ok && o.Kind == e.Kind
}

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrInvalidHandle = &Error{Kind: KindInvalidHandle, Op: "sentinel"}
	ErrUnresolved    = &Error{Kind: KindUnresolved, Op: "sentinel"}
	ErrNotDirectory  = &Error{Kind: KindNotDirectory, Op: "sentinel"}
	ErrTooDeep       = &Error{Kind: KindTooDeep, Op: "sentinel"}
	ErrIoError       = &Error{Kind: KindIoError, Op: "sentinel"}
)

// NFSv3 status codes relevant to StatusFor, from RFC 1813 §2.6. The core
// stops short of depending on a wire-format package (out of scope, §1),
// so these are plain numeric constants rather than an imported enum.
const (
	NFS3ErrOK          = 0
	NFS3ErrIO          = 5
	NFS3ErrNotDir      = 20
	NFS3ErrNameTooLong = 63
	NFS3ErrStale       = 70
)

// StatusFor maps a core error to the NFSv3 status code an embedding PROC
// handler would send, per the propagation policy in §7. It accepts nil
// (returns NFS3ErrOK) so callers can pass a call's error return straight
// through without a nil check.
func StatusFor(err error) uint32 {
	if err == nil {
		return NFS3ErrOK
	}
	fe, ok := err.(*Error)
	if !ok {
		return NFS3ErrIO
	}
	switch fe.Kind {
	case KindInvalidHandle, KindUnresolved:
		return NFS3ErrStale
	case KindNotDirectory:
		return NFS3ErrNotDir
	case KindTooDeep:
		return NFS3ErrNameTooLong
	case KindIoError:
		return NFS3ErrIO
	default:
		return NFS3ErrIO
	}
}
