// Package ops defines differentiable elementwise operations.
//
// Each operation is a descriptor carrying its forward function and
// derivative, plus a wrapper that applies it through autodiff.ApplyUnary or
// autodiff.ApplyBinary:
//   - Unary: ReLU, LeakyReLU, Neg, Scale, Square, Exp, Sigmoid, Tanh
//   - Binary: Add, Sub, Mul, Div, PReLU
//
// Binary operations require operands of equal shape; broadcast explicitly
// with autodiff.Broadcast first.
package ops

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/born-ml/gradtape/internal/tensor"
)

// exp computes e^x, in single precision for float32.
func exp[E tensor.Float](x E) E {
	if v, ok := any(x).(float32); ok {
		return E(math32.Exp(v))
	}
	return E(math.Exp(float64(x)))
}

// tanh computes the hyperbolic tangent, in single precision for float32.
func tanh[E tensor.Float](x E) E {
	if v, ok := any(x).(float32); ok {
		return E(math32.Tanh(v))
	}
	return E(math.Tanh(float64(x)))
}
