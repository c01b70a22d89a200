// Package uid issues process-unique identifiers used to key gradients.
//
// Identifiers are never reused and never released. A tensor whose gradient is
// no longer needed simply stops being looked up.
package uid

import (
	"strconv"
	"sync/atomic"
)

// ID identifies one tensor storage for gradient bookkeeping.
// The zero value is never issued.
type ID uint64

// String returns the ordinal prefixed with '#'.
func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Allocator hands out monotonically increasing IDs.
// It is safe for concurrent use and never blocks.
type Allocator struct {
	last atomic.Uint64
}

// NewAllocator creates an allocator whose first ID is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a fresh ID.
func (a *Allocator) Next() ID {
	return ID(a.last.Add(1))
}

// Last returns the most recently issued ID, or 0 if none was issued.
func (a *Allocator) Last() ID {
	return ID(a.last.Load())
}

// Default is the allocator used by backends that are not given one explicitly.
var Default = NewAllocator()
