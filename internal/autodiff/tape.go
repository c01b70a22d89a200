package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/tensor"
)

// BackwardFunc is a deferred backward computation. It reads the gradient of
// the operation's output from the store and accumulates into the gradients of
// its inputs. Everything else it needs is captured when it is recorded.
type BackwardFunc[E tensor.Float] func(g *Gradients[E]) error

// Tape records backward operations in forward order.
//
// A tape is owned by exactly one tensor handle at a time and is single-use:
// Backward consumes it, and Merge consumes the tape it absorbs.
type Tape[E tensor.Float] struct {
	ops      []BackwardFunc[E]
	consumed bool
}

// NewTape creates an empty tape.
func NewTape[E tensor.Float]() *Tape[E] {
	return &Tape[E]{ops: make([]BackwardFunc[E], 0, 16)}
}

// Record appends a backward operation.
func (t *Tape[E]) Record(fn BackwardFunc[E]) {
	if t.consumed {
		exceptions.Panicf("record on a consumed tape")
	}
	t.ops = append(t.ops, fn)
}

// Len returns the number of recorded operations.
func (t *Tape[E]) Len() int {
	return len(t.ops)
}

// Consumed reports whether the tape was replayed or merged away.
func (t *Tape[E]) Consumed() bool {
	return t.consumed
}

// Merge joins the tapes of the two operands of a binary operation. The result
// replays a's operations after b's (the sequence is a ++ b, reversed at replay),
// which is valid because the two histories are independent up to the join.
// Either argument may be nil. b is consumed.
func Merge[E tensor.Float](a, b *Tape[E]) (*Tape[E], error) {
	if err := checkMerge(a, b); err != nil {
		return nil, err
	}
	switch {
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	}
	a.ops = append(a.ops, b.ops...)
	b.ops = nil
	b.consumed = true
	return a, nil
}

// checkMerge reports whether Merge(a, b) would fail, without touching either tape.
func checkMerge[E tensor.Float](a, b *Tape[E]) error {
	if a != nil && a == b {
		return ErrSelfMerge
	}
	if err := a.usable(); err != nil {
		return errors.Wrap(err, "merge")
	}
	if err := b.usable(); err != nil {
		return errors.Wrap(err, "merge")
	}
	return nil
}

// usable returns ErrTapeConsumed if t can no longer record. A nil tape is usable.
func (t *Tape[E]) usable() error {
	if t != nil && t.consumed {
		return ErrTapeConsumed
	}
	return nil
}

// take marks the tape consumed and hands its operations to the caller.
func (t *Tape[E]) take() ([]BackwardFunc[E], error) {
	if t.consumed {
		return nil, ErrTapeConsumed
	}
	ops := t.ops
	t.ops = nil
	t.consumed = true
	return ops, nil
}
