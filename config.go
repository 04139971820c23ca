package bootmem

import s "github.com/bnclabs/gosettings"

// Pagesize default granularity for page allocations. Can be used as
// default for settings-parameter `pagesize`.
const Pagesize = int64(4096)

// Maxregionsize maximum size of a managed boot region.
const Maxregionsize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Earlyarena configurable parameters and default settings.
//
// "pagesize" (int64, default: 4096)
//		Granularity of page allocations, shall be a power of 2,
//		fixed for the lifetime of the arena.
//
// "alignment.strict" (bool, default: false)
//		When true, Alloc rounds the byte cursor up to the requested
//		alignment and Allocpages rounds the page cursor down to
//		alignments larger than pagesize. When false alignment
//		arguments are accepted but not applied, matching the legacy
//		bootstrap behavior.
func Defaultsettings() s.Settings {
	return s.Settings{
		"pagesize":         Pagesize,
		"alignment.strict": false,
	}
}
