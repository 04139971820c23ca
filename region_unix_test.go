//go:build linux || darwin
// +build linux darwin

package bootmem

import "testing"

import "github.com/stretchr/testify/require"

import s "github.com/bnclabs/gosettings"

func TestOsregion(t *testing.T) {
	size := int64(1 << 20)
	block, start, err := Osregion(size)
	require.NoError(t, err)
	require.True(t, start.Nonnull())

	arena := NewEarlyarena(s.Settings{"pagesize": 0x1000})
	arena.Init(start, size)

	// the arena hands out addresses inside the mapped block.
	ptr, err := arena.Alloc(64, 8)
	require.NoError(t, err)
	*(*byte)(ptr.Pointer()) = 0xff
	require.Equal(t, byte(0xff), block[0])

	pptr, err := arena.Allocpages(4, 0)
	require.NoError(t, err)
	*(*byte)(pptr.Pointer()) = 0x5a
	require.Equal(t, byte(0x5a), block[size-4*0x1000])
	arena.Validate()

	require.NoError(t, Osrelease(block))

	// panic case
	require.Panics(t, func() { Osregion(0) })
}
