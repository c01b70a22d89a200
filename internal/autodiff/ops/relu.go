package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// ReLUOp is max(x, 0). The derivative at 0 is taken as 0.
type ReLUOp[E tensor.Float] struct{}

// Name returns "relu".
func (ReLUOp[E]) Name() string { return "relu" }

// Forward computes max(x, 0).
func (ReLUOp[E]) Forward(x E) E {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative is 1 for positive x and 0 otherwise.
func (ReLUOp[E]) Derivative(x E) E {
	if x > 0 {
		return 1
	}
	return 0
}

// ReLU applies the rectified linear unit.
func ReLU[E tensor.Float](x *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](ReLUOp[E]{}, x)
}

// LeakyReLUOp is x for x >= 0 and Alpha*x otherwise.
//
//	f(x)  = x < 0 ? Alpha*x : x
//	f'(x) = x < 0 ? Alpha   : 1
type LeakyReLUOp[E tensor.Float] struct {
	Alpha E
}

// Name returns "leaky_relu".
func (LeakyReLUOp[E]) Name() string { return "leaky_relu" }

// Forward computes the leaky rectifier.
func (op LeakyReLUOp[E]) Forward(x E) E {
	if x < 0 {
		return x * op.Alpha
	}
	return x
}

// Derivative returns Alpha for negative x and 1 otherwise.
func (op LeakyReLUOp[E]) Derivative(x E) E {
	if x < 0 {
		return op.Alpha
	}
	return 1
}

// LeakyReLU applies the leaky rectifier with slope alpha for negative inputs.
func LeakyReLU[E tensor.Float](x *autodiff.Tensor[E], alpha E) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyUnary[E](LeakyReLUOp[E]{Alpha: alpha}, x)
}
