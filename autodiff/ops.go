// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/born-ml/gradtape/internal/autodiff/ops"
	"github.com/born-ml/gradtape/tensor"
)

// ReLU applies max(x, 0).
func ReLU[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return ops.ReLU(x) }

// LeakyReLU applies the leaky rectifier with slope alpha for negative inputs.
func LeakyReLU[E tensor.Float](x *Tensor[E], alpha E) (*Tensor[E], error) {
	return ops.LeakyReLU(x, alpha)
}

// PReLU applies the rectifier with per-element slopes alpha.
func PReLU[E tensor.Float](x, alpha *Tensor[E]) (*Tensor[E], error) { return ops.PReLU(x, alpha) }

// Neg negates x.
func Neg[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return ops.Neg(x) }

// Scale multiplies x by k.
func Scale[E tensor.Float](x *Tensor[E], k E) (*Tensor[E], error) { return ops.Scale(x, k) }

// Square computes x².
func Square[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return ops.Square(x) }

// Exp computes e^x.
func Exp[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return ops.Exp(x) }

// Sigmoid applies the logistic function.
func Sigmoid[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return ops.Sigmoid(x) }

// Tanh applies the hyperbolic tangent.
func Tanh[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return ops.Tanh(x) }

// Add computes x + y for tensors of equal shape.
func Add[E tensor.Float](x, y *Tensor[E]) (*Tensor[E], error) { return ops.Add(x, y) }

// Sub computes x - y for tensors of equal shape.
func Sub[E tensor.Float](x, y *Tensor[E]) (*Tensor[E], error) { return ops.Sub(x, y) }

// Mul computes x * y for tensors of equal shape.
func Mul[E tensor.Float](x, y *Tensor[E]) (*Tensor[E], error) { return ops.Mul(x, y) }

// Div computes x / y for tensors of equal shape.
func Div[E tensor.Float](x, y *Tensor[E]) (*Tensor[E], error) { return ops.Div(x, y) }
