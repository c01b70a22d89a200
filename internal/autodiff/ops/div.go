package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// DivOp is x / y.
//
// Backward:
//   - ∂(x/y)/∂x = 1/y
//   - ∂(x/y)/∂y = -x/y²
type DivOp[E tensor.Float] struct{}

// Name returns "div".
func (DivOp[E]) Name() string { return "div" }

// Forward computes x / y.
func (DivOp[E]) Forward(x, y E) E { return x / y }

// DerivX returns 1/y.
func (DivOp[E]) DerivX(_, y E) E { return 1 / y }

// DerivY returns -x/y².
func (DivOp[E]) DerivY(x, y E) E { return -x / (y * y) }

// Div divides x by y elementwise.
func Div[E tensor.Float](x, y *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyBinary[E](DivOp[E]{}, x, y)
}
