// Functions and methods are not thread safe.

package bootmem

import humanize "github.com/dustin/go-humanize"

import s "github.com/bnclabs/gosettings"
import "github.com/bnclabs/bootmem/api"

// Earlyarena is a double-ended bump allocator over one contiguous
// memory region. Byte allocations bump `bpos` forward from the low
// end, page allocations bump `ppos` backward from the high end, the
// arena is exhausted once the cursors meet. Implements
// api.Bootstrapper{}, api.Mallocer{} and api.Pager{} interfaces.
type Earlyarena struct {
	base    api.Addr // starting address of the managed region
	size    int64    // total bytes managed by this arena
	bpos    api.Addr // next free address for byte allocation
	ppos    api.Addr // boundary of the page-allocated area
	ballocs int64    // outstanding byte allocations, a call count

	// configuration
	pagesize    int64 // granularity of page allocations
	strictalign bool  // apply requested alignments to the cursors
}

// NewEarlyarena create a new early arena. The arena starts inert,
// without a managed region, use Init to supply one before
// allocating.
func NewEarlyarena(setts s.Settings) *Earlyarena {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	arena := &Earlyarena{
		pagesize:    setts.Int64("pagesize"),
		strictalign: setts.Bool("alignment.strict"),
	}
	if ispow2(arena.pagesize) == false {
		panicerr("pagesize %v should be a power of 2", arena.pagesize)
	}
	return arena
}

//---- api.Bootstrapper{} interface.

// Init implement api.Bootstrapper{} interface. Claims the region
// [start, start+size) and resets both cursors; calling Init on an
// active arena silently resets it, outstanding allocations are the
// caller's responsibility.
func (arena *Earlyarena) Init(start api.Addr, size int64) {
	if start.Nonnull() == false || size <= 0 {
		panicerr("invalid region {%x, %v}", uintptr(start), size)
	} else if size > Maxregionsize {
		panicerr("region cannot exceed %v bytes (%v)", Maxregionsize, size)
	} else if start+api.Addr(size) < start {
		panicerr("region {%x, %v} wraps the address space", uintptr(start), size)
	}
	arena.base, arena.size = start, size
	arena.bpos, arena.ppos = start, start+api.Addr(size)
	arena.ballocs = 0
	infof("%v init %v region at %#x\n", logprefix, humanize.Bytes(uint64(size)), uintptr(start))
}

// Addmemory implement api.Bootstrapper{} interface. Accepted for
// forward compatibility with multi-region growth, the new region is
// not tracked in this version.
func (arena *Earlyarena) Addmemory(start api.Addr, size int64) error {
	debugf("%v Addmemory{%x, %v} ignored\n", logprefix, uintptr(start), size)
	return nil
}

//---- api.Mallocer{} interface.

// Alloc implement api.Mallocer{} interface. Bumps the byte cursor
// forward by `size`; with "alignment.strict" the cursor is first
// rounded up to `align`, otherwise `align` is accepted and ignored.
// State is left unchanged on failure.
func (arena *Earlyarena) Alloc(size, align int64) (api.Addr, error) {
	if arena.size == 0 {
		panicerr("arena not initialized")
	} else if size < 0 {
		panicerr("Alloc size %v", size)
	}
	ptr := arena.bpos
	if arena.strictalign && align > 1 {
		if ispow2(align) == false {
			panicerr("Alloc align %v should be a power of 2", align)
		}
		if ptr = alignup(ptr, align); ptr < arena.bpos { // wrapped
			return 0, api.ErrorExhausted
		}
	}
	pos := ptr + api.Addr(size)
	if pos < ptr || pos > arena.ppos { // wrapped, or cursors met
		return 0, api.ErrorExhausted
	}
	arena.bpos = pos
	arena.ballocs++
	return ptr, nil
}

// Free implement api.Mallocer{} interface. Best effort, addresses
// beyond the byte cursor are silently ignored. There is no partial
// reclamation: the byte area is reclaimed wholesale once the count
// of outstanding allocations reaches zero.
func (arena *Earlyarena) Free(ptr api.Addr, size, align int64) {
	if ptr > arena.bpos {
		return
	}
	if arena.ballocs > 0 {
		arena.ballocs--
	}
	if arena.ballocs == 0 {
		arena.bpos = arena.base
	}
}

// Totalbytes implement api.Mallocer{} interface.
func (arena *Earlyarena) Totalbytes() int64 {
	return arena.size
}

// Usedbytes implement api.Mallocer{} interface.
func (arena *Earlyarena) Usedbytes() int64 {
	return int64(arena.bpos - arena.base)
}

// Availablebytes implement api.Mallocer{} interface.
func (arena *Earlyarena) Availablebytes() int64 {
	return int64(arena.ppos - arena.bpos)
}

//---- api.Pager{} interface.

// Pagesize implement api.Pager{} interface.
func (arena *Earlyarena) Pagesize() int64 {
	return arena.pagesize
}

// Allocpages implement api.Pager{} interface. Carves `npages` pages
// backward off the page cursor; with "alignment.strict" the cursor
// is additionally rounded down to `alignpow2` when that exceeds the
// page size. State is left unchanged on failure.
func (arena *Earlyarena) Allocpages(npages, alignpow2 int64) (api.Addr, error) {
	if arena.size == 0 {
		panicerr("arena not initialized")
	} else if npages <= 0 {
		return 0, api.ErrorExhausted
	}
	nbytes := npages * arena.pagesize
	if nbytes/arena.pagesize != npages { // wrapped
		return 0, api.ErrorExhausted
	}
	pos := arena.ppos - api.Addr(nbytes)
	if pos > arena.ppos { // wrapped
		return 0, api.ErrorExhausted
	}
	if arena.strictalign && alignpow2 > arena.pagesize {
		if ispow2(alignpow2) == false {
			panicerr("Allocpages align %v should be a power of 2", alignpow2)
		}
		pos = aligndown(pos, alignpow2)
	}
	if pos < arena.bpos { // cursors met
		return 0, api.ErrorExhausted
	}
	arena.ppos = pos
	return pos, nil
}

// Freepages implement api.Pager{} interface. Page allocations are
// permanent for the lifetime of this arena, the call is accepted as
// a no-op.
func (arena *Earlyarena) Freepages(ptr api.Addr, npages int64) {
}

// Totalpages implement api.Pager{} interface.
func (arena *Earlyarena) Totalpages() int64 {
	return arena.size / arena.pagesize
}

// Usedpages implement api.Pager{} interface.
func (arena *Earlyarena) Usedpages() int64 {
	return int64(arena.base+api.Addr(arena.size)-arena.ppos) / arena.pagesize
}

// Availablepages implement api.Pager{} interface.
func (arena *Earlyarena) Availablepages() int64 {
	return int64(arena.ppos-arena.bpos) / arena.pagesize
}

//---- maintenance

// Validate arena invariants:
//
//   * base <= bpos <= ppos <= base+size.
//   * outstanding byte allocations cannot be negative.
//   * byte area is fully reclaimed when no allocation is
//     outstanding.
//
// Panics on violation. Uninitialized arenas are trivially valid.
func (arena *Earlyarena) Validate() {
	if arena.size == 0 {
		return
	}
	end := arena.base + api.Addr(arena.size)
	if arena.bpos < arena.base || arena.ppos < arena.bpos || end < arena.ppos {
		fmsg := "cursor invariant: base:%x bpos:%x ppos:%x end:%x"
		panicerr(fmsg, uintptr(arena.base), uintptr(arena.bpos), uintptr(arena.ppos), uintptr(end))
	}
	if arena.ballocs < 0 {
		panicerr("negative outstanding allocations %v", arena.ballocs)
	}
	if arena.ballocs == 0 && arena.bpos != arena.base {
		fmsg := "zero outstanding allocations, byte cursor at %x not %x"
		panicerr(fmsg, uintptr(arena.bpos), uintptr(arena.base))
	}
}
