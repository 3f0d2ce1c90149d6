package fh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustLstat(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err)
	return info
}

func TestEncodeThreeLevelTree(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	ab := filepath.Join(a, "b")
	abc := filepath.Join(ab, "c")
	require.NoError(t, os.MkdirAll(ab, 0o755))
	require.NoError(t, os.WriteFile(abc, []byte("x"), 0o644))

	_, inoA, ok := devIno(mustLstat(t, a))
	require.True(t, ok)
	_, inoAB, ok := devIno(mustLstat(t, ab))
	require.True(t, ok)
	devABC, inoABC, ok := devIno(mustLstat(t, abc))
	require.True(t, ok)

	h, stat, err := Encode(abc, false)
	require.NoError(t, err)
	require.Equal(t, devABC, h.Dev)
	require.Equal(t, inoABC, h.Ino)
	require.Equal(t, stat.Ino, h.Ino)

	// The trail only records ancestors of abc's parent chain within the
	// tree we created; Encode walks from the real filesystem root, so
	// it also hashes every ancestor of root itself. What matters is
	// that the *last two* entries match a and a/b, per §4.2.
	require.GreaterOrEqual(t, int(h.Len), 2)
	require.Equal(t, inodeHash(inoA), h.Inos[h.Len-2])
	require.Equal(t, inodeHash(inoAB), h.Inos[h.Len-1])
}

func TestEncodeRoot(t *testing.T) {
	h, _, err := Encode("/", false)
	require.NoError(t, err)
	require.Equal(t, uint8(0), h.Len)
	require.True(t, h.Valid())
}

func TestEncodeRequireDirOnFile(t *testing.T) {
	root := t.TempDir()
	f := filepath.Join(root, "x")
	require.NoError(t, os.WriteFile(f, []byte("y"), 0o644))

	h, _, err := Encode(f, true)
	require.Error(t, err)
	require.Equal(t, Zero, h)
	var fhErr *Error
	require.ErrorAs(t, err, &fhErr)
	require.Equal(t, KindNotDirectory, fhErr.Kind)
}

func TestEncodeMissingPath(t *testing.T) {
	root := t.TempDir()
	_, _, err := Encode(filepath.Join(root, "nope"), false)
	require.Error(t, err)
	var fhErr *Error
	require.ErrorAs(t, err, &fhErr)
	require.Equal(t, KindIoError, fhErr.Kind)
}

func TestEncodeTooDeep(t *testing.T) {
	root := t.TempDir()
	dir := root
	for i := 0; i < MaxDepth+5; i++ {
		dir = filepath.Join(dir, "d")
		require.NoError(t, os.Mkdir(dir, 0o755))
	}
	target := filepath.Join(dir, "leaf")
	require.NoError(t, os.WriteFile(target, nil, 0o644))

	_, _, err := Encode(target, false)
	require.Error(t, err)
	var fhErr *Error
	require.ErrorAs(t, err, &fhErr)
	require.Equal(t, KindTooDeep, fhErr.Kind)
}
