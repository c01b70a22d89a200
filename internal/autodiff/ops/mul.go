package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// MulOp is x * y.
//
// Backward:
//   - ∂(x*y)/∂x = y
//   - ∂(x*y)/∂y = x
type MulOp[E tensor.Float] struct{}

// Name returns "mul".
func (MulOp[E]) Name() string { return "mul" }

// Forward computes x * y.
func (MulOp[E]) Forward(x, y E) E { return x * y }

// DerivX returns y.
func (MulOp[E]) DerivX(_, y E) E { return y }

// DerivY returns x.
func (MulOp[E]) DerivY(x, _ E) E { return x }

// Mul multiplies two tensors elementwise.
func Mul[E tensor.Float](x, y *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyBinary[E](MulOp[E]{}, x, y)
}
