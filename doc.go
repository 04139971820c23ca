// Package bootmem supplies memory management for the bootstrap phase
// of a system, after the platform hands over a usable memory range
// and before the full byte allocator and page allocator are brought
// up. Note that Types and Functions exported by this package are not
// thread safe, callers own the synchronization story during early
// boot.
//
// Earlyarena is a single contiguous block of memory serving two
// allocation disciplines from opposite ends, meeting in the middle:
//
//   [ bytes-used | avail-area | pages-used ]
//   |            | -->    <-- |            |
//   base        bpos         ppos     base+size
//
//  * Byte allocations grow forward from base, with no per-allocation
//    metadata. Only a count of outstanding allocations is kept; when
//    the count drops to zero the whole byte area is reclaimed in one
//    step.
//  * Page allocations are carved backward from the high end and are
//    never given back, appropriate for few, large, long-lived
//    allocations like page-tables and stacks.
//  * Either kind of request fails with api.ErrorExhausted once the
//    two cursors meet.
//
// Arenas can be created with following parameters:
//
//   pagesize         : granularity of page allocations, in bytes.
//   alignment.strict : round cursors to the requested alignment
//                      before carving an allocation.
package bootmem
