package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// ExpOp is e^x; its derivative is itself.
type ExpOp[E tensor.Float] struct{}

// Name returns "exp".
func (ExpOp[E]) Name() string { return "exp" }

// Forward computes e^x.
func (ExpOp[E]) Forward(x E) E { return exp(x) }

// Derivative computes e^x.
func (ExpOp[E]) Derivative(x E) E { return exp(x) }

// Exp computes e^x elementwise.
func Exp[E tensor.Float](x *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](ExpOp[E]{}, x)
}
