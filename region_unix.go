//go:build linux || darwin
// +build linux darwin

package bootmem

import "unsafe"

import "golang.org/x/sys/unix"

import "github.com/bnclabs/bootmem/api"

// Osregion map an anonymous read-write block of `size` bytes from
// the host OS, to back an early arena when running hosted, as in
// tests or user-space bring-up. Returns the backing slice and the
// address of its first byte, suitable for Init.
func Osregion(size int64) ([]byte, api.Addr, error) {
	if size <= 0 {
		panicerr("Osregion size %v", size)
	}
	prot, flags := unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON
	block, err := unix.Mmap(-1, 0, int(size), prot, flags)
	if err != nil {
		return nil, 0, err
	}
	return block, api.Addr(uintptr(unsafe.Pointer(&block[0]))), nil
}

// Osrelease unmap a block obtained from Osregion. The arena holds
// only address-range bookkeeping, release is entirely the backing
// block's affair.
func Osrelease(block []byte) error {
	return unix.Munmap(block)
}
