package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// TanhOp is tanh(x), with derivative 1 - tanh²(x).
type TanhOp[E tensor.Float] struct{}

// Name returns "tanh".
func (TanhOp[E]) Name() string { return "tanh" }

// Forward computes tanh(x).
func (TanhOp[E]) Forward(x E) E { return tanh(x) }

// Derivative computes 1 - tanh²(x).
func (TanhOp[E]) Derivative(x E) E {
	t := tanh(x)
	return 1 - t*t
}

// Tanh applies the hyperbolic tangent elementwise.
func Tanh[E tensor.Float](x *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](TanhOp[E]{}, x)
}
