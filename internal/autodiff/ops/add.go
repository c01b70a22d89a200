package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// AddOp is x + y. Both partial derivatives are 1, so the output gradient
// flows unchanged to both operands.
type AddOp[E tensor.Float] struct{}

// Name returns "add".
func (AddOp[E]) Name() string { return "add" }

// Forward computes x + y.
func (AddOp[E]) Forward(x, y E) E { return x + y }

// DerivX returns 1.
func (AddOp[E]) DerivX(_, _ E) E { return 1 }

// DerivY returns 1.
func (AddOp[E]) DerivY(_, _ E) E { return 1 }

// Add adds two tensors of equal shape.
func Add[E tensor.Float](x, y *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyBinary[E](AddOp[E]{}, x, y)
}
