package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// SigmoidOp is σ(x) = 1 / (1 + exp(-x)), with σ'(x) = σ(x)(1 - σ(x)).
type SigmoidOp[E tensor.Float] struct{}

// Name returns "sigmoid".
func (SigmoidOp[E]) Name() string { return "sigmoid" }

// Forward computes σ(x).
func (SigmoidOp[E]) Forward(x E) E { return 1 / (1 + exp(-x)) }

// Derivative computes σ(x)(1 - σ(x)).
func (op SigmoidOp[E]) Derivative(x E) E {
	s := op.Forward(x)
	return s * (1 - s)
}

// Sigmoid applies the logistic function elementwise.
func Sigmoid[E tensor.Float](x *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](SigmoidOp[E]{}, x)
}
