package autodiff

import (
	"log/slog"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/tensor"
)

// Backward computes gradients of a scalar output with respect to every tensor
// that took part in its traced history.
//
// Algorithm:
//  1. Move the tape out of out; a tape is replayed at most once.
//  2. Seed the store with 1 at out's ID.
//  3. Replay the recorded operations in reverse order. Each one reads the
//     gradient accumulated for its output so far and adds into its inputs.
//
// The first failing operation aborts the pass; no partial store is returned.
func Backward[E tensor.Float](out *Tensor[E]) (*Gradients[E], error) {
	if out == nil {
		return nil, errors.Wrap(ErrNonScalarOutput, "nil tensor")
	}
	if !out.Shape().IsScalar() {
		return nil, errors.Wrapf(ErrNonScalarOutput, "output has shape %s", out.Shape())
	}
	tape := out.takeTape()
	if tape == nil {
		return nil, errors.Wrapf(ErrNonScalarOutput, "output %s is not traced", out.ID())
	}
	ops, err := tape.take()
	if err != nil {
		return nil, err
	}

	grads := NewGradients[E]()
	if err := grads.Accumulate(out.ID(), out.Shape(), []E{1}); err != nil {
		return nil, err
	}
	if err := replay(ops, grads); err != nil {
		return nil, err
	}
	slog.Debug("backward complete", "output", out.ID(), "ops", len(ops), "gradients", grads.Len())
	return grads, nil
}

// replay runs ops from last to first. Panics raised by kernels are reported
// as errors of the operation that raised them.
func replay[E tensor.Float](ops []BackwardFunc[E], grads *Gradients[E]) error {
	for i := len(ops) - 1; i >= 0; i-- {
		var opErr error
		if caught := exceptions.TryCatch[error](func() { opErr = ops[i](grads) }); caught != nil {
			return errors.Wrapf(caught, "backward op %d panicked", i)
		}
		if opErr != nil {
			return errors.Wrapf(opErr, "backward op %d", i)
		}
	}
	return nil
}
