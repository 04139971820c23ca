package api

import "fmt"
import "unsafe"

// Addr is an address within a managed memory region. It is plain
// numeric bookkeeping, allocators do arithmetic on Addr without ever
// dereferencing it. The zero value is the null address and is never
// a valid allocation result.
type Addr uintptr

// Nonnull report whether addr can stand for a successful allocation.
func (addr Addr) Nonnull() bool {
	return addr != 0
}

// Pointer cast addr for raw memory access. Panics on the null
// address, keeping unchecked casts inside the package boundary.
func (addr Addr) Pointer() unsafe.Pointer {
	if addr == 0 {
		panic(fmt.Errorf("null address"))
	}
	return unsafe.Pointer(uintptr(addr))
}
