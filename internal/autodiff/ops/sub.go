package ops

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// SubOp is x - y.
type SubOp[E tensor.Float] struct{}

// Name returns "sub".
func (SubOp[E]) Name() string { return "sub" }

// Forward computes x - y.
func (SubOp[E]) Forward(x, y E) E { return x - y }

// DerivX returns 1.
func (SubOp[E]) DerivX(_, _ E) E { return 1 }

// DerivY returns -1.
func (SubOp[E]) DerivY(_, _ E) E { return -1 }

// Sub subtracts y from x.
func Sub[E tensor.Float](x, y *autodiff.Tensor[E]) (*autodiff.Tensor[E], error) {
	return autodiff.ApplyBinary[E](SubOp[E]{}, x, y)
}
