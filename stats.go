package bootmem

import "encoding/json"

import humanize "github.com/dustin/go-humanize"

// Stats return a flat map of arena accounting. All values are O(1)
// reads off the two cursors, there is no per-allocation bookkeeping
// to walk.
func (arena *Earlyarena) Stats() map[string]interface{} {
	stats := make(map[string]interface{})
	stats["base"] = uint64(arena.base)
	stats["size"] = arena.size
	stats["bytes.pos"] = uint64(arena.bpos)
	stats["bytes.allocs"] = arena.ballocs
	stats["bytes.total"] = arena.Totalbytes()
	stats["bytes.used"] = arena.Usedbytes()
	stats["bytes.available"] = arena.Availablebytes()
	stats["pages.pos"] = uint64(arena.ppos)
	stats["pages.size"] = arena.pagesize
	stats["pages.total"] = arena.Totalpages()
	stats["pages.used"] = arena.Usedpages()
	stats["pages.available"] = arena.Availablepages()
	return stats
}

// Logstats render arena statistics as json, with byte fields in
// human readable form, and emit them via the package logger.
func (arena *Earlyarena) Logstats(name string) {
	stats := arena.Stats()
	for _, key := range []string{"bytes.total", "bytes.used", "bytes.available"} {
		stats[key] = humanize.Bytes(uint64(stats[key].(int64)))
	}
	text, err := json.Marshal(stats)
	if err != nil {
		panicerr("marshaling arena stats: %v", err)
	}
	infof("%v %v stats %v\n", logprefix, name, string(text))
}
