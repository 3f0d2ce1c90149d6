package fh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRoot(t *testing.T) {
	path, _, err := Decode(Handle{})
	require.NoError(t, err)
	require.Equal(t, "/", path)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	root := t.TempDir()
	ab := filepath.Join(root, "a", "b")
	abc := filepath.Join(ab, "c")
	require.NoError(t, os.MkdirAll(ab, 0o755))
	require.NoError(t, os.WriteFile(abc, []byte("x"), 0o644))

	h, _, err := Encode(abc, false)
	require.NoError(t, err)

	got, stat, err := Decode(h)
	require.NoError(t, err)
	require.Equal(t, strings.TrimPrefix(abc, "/"), got)
	require.Equal(t, h.Ino, stat.Ino)
}

func TestDecodeUnresolved(t *testing.T) {
	// A handle whose (dev, ino) cannot exist on this machine's real
	// filesystem tree should come back unresolved, not panic or hang.
	h := Handle{Dev: 0xDEADBEEF, Ino: 0xDEADBEEF, Len: 1}
	h.Inos[0] = 0

	_, _, err := Decode(h)
	require.Error(t, err)
	var fhErr *Error
	require.ErrorAs(t, err, &fhErr)
	require.Equal(t, KindUnresolved, fhErr.Kind)
}

func TestDecodeAfterRename(t *testing.T) {
	root := t.TempDir()
	ab := filepath.Join(root, "a", "b")
	abc := filepath.Join(ab, "c")
	require.NoError(t, os.MkdirAll(ab, 0o755))
	require.NoError(t, os.WriteFile(abc, []byte("x"), 0o644))

	h, _, err := Encode(abc, false)
	require.NoError(t, err)

	renamed := filepath.Join(ab, "d")
	require.NoError(t, os.Rename(abc, renamed))

	got, _, err := Decode(h)
	require.NoError(t, err)
	require.Equal(t, strings.TrimPrefix(renamed, "/"), got)
}
