// Package api define types and interfaces common to boot-phase
// allocators implemented by this package, and consumed by the
// composing allocation framework.
package api

// Bootstrapper interface for allocator lifecycle. Implementations
// start inert and become usable only after Init supplies the
// managed region.
type Bootstrapper interface {
	// Init claim the contiguous region [start, start+size) for this
	// allocator and reset all allocation state. Calling Init on an
	// active allocator silently resets it, outstanding allocations
	// are the caller's responsibility.
	Init(start Addr, size int64)

	// Addmemory grow the allocator with one more region. Allocators
	// that track a single region accept the call as a no-op and
	// return nil.
	Addmemory(start Addr, size int64) error
}

// Mallocer interface for byte granularity allocation.
type Mallocer interface {
	// Alloc allocate a chunk of `size` bytes with requested
	// `align`. Returns ErrorExhausted when there is not enough
	// contiguous space left.
	Alloc(size, align int64) (Addr, error)

	// Free chunk back to the allocator. Best effort, never fails;
	// `size` and `align` should match the corresponding Alloc.
	Free(ptr Addr, size, align int64)

	// Totalbytes managed by this allocator.
	Totalbytes() int64

	// Usedbytes allocated, so far, at byte granularity.
	Usedbytes() int64

	// Availablebytes left for allocation, of either kind.
	Availablebytes() int64
}

// Pager interface for page granularity allocation.
type Pager interface {
	// Pagesize granularity of page allocations, in bytes. Fixed for
	// the lifetime of the allocator.
	Pagesize() int64

	// Allocpages allocate `npages` contiguous pages aligned to
	// `alignpow2`. Returns ErrorExhausted when there is not enough
	// contiguous space left.
	Allocpages(npages, alignpow2 int64) (Addr, error)

	// Freepages return pages back to the allocator. Best effort,
	// never fails.
	Freepages(ptr Addr, npages int64)

	// Totalpages managed by this allocator.
	Totalpages() int64

	// Usedpages allocated, so far, at page granularity.
	Usedpages() int64

	// Availablepages left for allocation.
	Availablepages() int64
}
