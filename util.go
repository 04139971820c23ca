package bootmem

import "fmt"

import "github.com/bnclabs/bootmem/api"

// alignup round addr up to the next multiple of align, align shall
// be a power of 2.
func alignup(addr api.Addr, align int64) api.Addr {
	mask := api.Addr(align - 1)
	return (addr + mask) &^ mask
}

// aligndown round addr down to the previous multiple of align, align
// shall be a power of 2.
func aligndown(addr api.Addr, align int64) api.Addr {
	return addr &^ api.Addr(align-1)
}

func ispow2(n int64) bool {
	return n > 0 && (n&(n-1)) == 0
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
