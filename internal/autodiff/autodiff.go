// Package autodiff implements reverse-mode automatic differentiation with a
// dynamic tape.
//
// Architecture:
//   - Tensor: a strided handle plus an optional Tape. A handle without a tape
//     is a leaf; operations on leaves alone record nothing.
//   - Tape: an ordered log of backward closures. Operations move the tape from
//     their inputs to their output; binary operations merge two tapes.
//   - Gradients: a sparse store keyed by tensor ID, accumulated into.
//   - Backward: seeds the scalar output with 1 and replays the tape in reverse.
//
// Usage:
//
//	b := cpu.New[float64]()
//	x, _ := autodiff.FromSlice(b, []float64{-2, -1, 1, 2}, shape.Const(4))
//	y, _ := ops.LeakyReLU(x.Trace(), 0.5)
//	loss, _ := autodiff.Sum(y)
//	grads, _ := autodiff.Backward(loss)
//	g, _ := grads.Of(x) // [0.5 0.5 1 1]
package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/shape"
)

// Error kinds reported by the engine.
var (
	// ErrMissingGradient reports a lookup for an ID that received no gradient
	// during the backward pass.
	ErrMissingGradient = errors.New("missing gradient")

	// ErrNonScalarOutput reports Backward called on a tensor that is not a
	// traced scalar.
	ErrNonScalarOutput = errors.New("backward requires a traced scalar output")

	// ErrTapeConsumed reports reuse of a tape that was already replayed or merged.
	ErrTapeConsumed = errors.New("tape already consumed")

	// ErrSelfMerge reports an attempt to merge a tape with itself.
	ErrSelfMerge = errors.New("cannot merge a tape with itself")

	// ErrShapeMismatch is shape.ErrShapeMismatch, re-exported for callers
	// that only import autodiff.
	ErrShapeMismatch = shape.ErrShapeMismatch
)
