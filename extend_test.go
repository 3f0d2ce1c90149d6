package fh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtendAppendsParentHash(t *testing.T) {
	parent := Handle{Dev: 1, Ino: 20, Len: 1}
	parent.Inos[0] = 10

	child, err := Extend(parent, 1, 30, 7)
	require.NoError(t, err)
	require.Equal(t, parent.Len+1, child.Len)
	require.Equal(t, uint32(1), child.Dev)
	require.Equal(t, uint32(30), child.Ino)
	require.Equal(t, uint32(7), child.Gen)
	require.Equal(t, inodeHash(parent.Ino), child.Inos[parent.Len])
	require.Equal(t, parent.Inos[:parent.Len], child.Inos[:parent.Len])
}

func TestExtendAtMaxDepthFails(t *testing.T) {
	parent := Handle{Dev: 1, Ino: 2, Len: MaxDepth}
	_, err := Extend(parent, 1, 2, 3)
	require.Error(t, err)
	var fhErr *Error
	require.ErrorAs(t, err, &fhErr)
	require.Equal(t, KindTooDeep, fhErr.Kind)
}

func TestExtendWithPath(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "d")
	require.NoError(t, os.Mkdir(dir, 0o755))

	parent := Handle{Dev: 1, Ino: 2, Len: 0}
	var attr attrSlot

	child, stat, err := ExtendWithPath(parent, dir, os.ModeDir, &attr)
	require.NoError(t, err)
	require.Equal(t, uint8(1), child.Len)

	peeked, ok := attr.peek()
	require.True(t, ok)
	require.Equal(t, stat.Ino, peeked.Ino)
}

func TestExtendWithPathModeMismatch(t *testing.T) {
	root := t.TempDir()
	f := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(f, nil, 0o644))

	parent := Handle{Dev: 1, Ino: 2, Len: 0}
	var attr attrSlot
	attr.set(FileStat{Ino: 99})

	_, _, err := ExtendWithPath(parent, f, os.ModeDir, &attr)
	require.Error(t, err)

	_, ok := attr.peek()
	require.False(t, ok)
}

func TestExtendWithPathMissing(t *testing.T) {
	root := t.TempDir()
	parent := Handle{Dev: 1, Ino: 2, Len: 0}
	var attr attrSlot

	_, _, err := ExtendWithPath(parent, filepath.Join(root, "nope"), 0, &attr)
	require.Error(t, err)
	var fhErr *Error
	require.ErrorAs(t, err, &fhErr)
	require.Equal(t, KindIoError, fhErr.Kind)
}
