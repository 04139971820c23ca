package api

import "testing"
import "unsafe"

import "github.com/stretchr/testify/require"

func TestAddrNonnull(t *testing.T) {
	require.False(t, Addr(0).Nonnull())
	require.True(t, Addr(0x1000).Nonnull())
}

func TestAddrPointer(t *testing.T) {
	var x byte

	addr := Addr(uintptr(unsafe.Pointer(&x)))
	require.True(t, addr.Nonnull())

	*(*byte)(addr.Pointer()) = 0xa5
	require.Equal(t, byte(0xa5), x)

	require.Panics(t, func() { Addr(0).Pointer() })
}
