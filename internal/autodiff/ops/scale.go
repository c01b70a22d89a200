package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// ScaleOp multiplies by a constant.
type ScaleOp[E tensor.Float] struct {
	K E
}

// Name returns "scale".
func (ScaleOp[E]) Name() string { return "scale" }

// Forward computes K*x.
func (op ScaleOp[E]) Forward(x E) E { return op.K * x }

// Derivative returns K.
func (op ScaleOp[E]) Derivative(E) E { return op.K }

// Scale multiplies x by k.
func Scale[E tensor.Float](x *autodiff.Tensor[E], k E) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](ScaleOp[E]{K: k}, x)
}

// Neg negates x.
func Neg[E tensor.Float](x *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](ScaleOp[E]{K: -1}, x)
}

// SquareOp is x².
type SquareOp[E tensor.Float] struct{}

// Name returns "square".
func (SquareOp[E]) Name() string { return "square" }

// Forward computes x*x.
func (SquareOp[E]) Forward(x E) E { return x * x }

// Derivative returns 2x.
func (SquareOp[E]) Derivative(x E) E { return 2 * x }

// Square squares x elementwise.
func Square[E tensor.Float](x *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](SquareOp[E]{}, x)
}
