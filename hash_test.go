package fh

import "testing"

func TestInodeHash(t *testing.T) {
	cases := []struct {
		ino  uint32
		want byte
	}{
		{0, 0},
		{10, 10},
		{256, byte((256 + 3*1) & 0xFF)},
		{1 << 16, byte((1<<16 + 5) & 0xFF)},
		{0xFFFFFFFF, byte((0xFFFFFFFF + 3*(0xFFFFFFFF>>8) + 5*(0xFFFFFFFF>>16)) & 0xFF)},
	}
	for _, c := range cases {
		if got := inodeHash(c.ino); got != c.want {
			t.Errorf("inodeHash(%d) = %d, want %d", c.ino, got, c.want)
		}
	}
}
