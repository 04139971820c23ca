package api

import "errors"

// ErrorExhausted allocation cannot succeed because there is not
// enough contiguous space left in the managed region. Failed
// allocations leave the allocator state unchanged.
var ErrorExhausted = errors.New("exhausted")
