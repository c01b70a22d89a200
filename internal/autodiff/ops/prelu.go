package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// PReLUOp is the leaky rectifier with a learned slope tensor.
//
//	f(x, a)  = x < 0 ? a*x : x
//	∂f/∂x    = x < 0 ? a   : 1
//	∂f/∂a    = x < 0 ? x   : 0
type PReLUOp[E tensor.Float] struct{}

// Name returns "prelu".
func (PReLUOp[E]) Name() string { return "prelu" }

// Forward computes the rectifier with slope a.
func (PReLUOp[E]) Forward(x, a E) E {
	if x < 0 {
		return x * a
	}
	return x
}

// DerivX returns a for negative x and 1 otherwise.
func (PReLUOp[E]) DerivX(x, a E) E {
	if x < 0 {
		return a
	}
	return 1
}

// DerivY returns x for negative x and 0 otherwise.
func (PReLUOp[E]) DerivY(x, _ E) E {
	if x < 0 {
		return x
	}
	return 0
}

// PReLU applies the rectifier with per-element slopes alpha, which must have
// x's shape. A shared slope can be broadcast to x's shape first.
func PReLU[E tensor.Float](x, alpha *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyBinary[E](PReLUOp[E]{}, x, alpha)
}
