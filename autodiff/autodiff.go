// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// A traced tensor carries a tape of deferred backward closures. Every
// operation moves the tape from its inputs to its output and records how to
// propagate the output's gradient back. Backward replays the tape of a scalar
// output in reverse and returns the gradient of every tensor that took part.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradtape/autodiff"
//	    "github.com/born-ml/gradtape/backend/cpu"
//	    "github.com/born-ml/gradtape/tensor"
//	)
//
//	func main() {
//	    b := cpu.New[float64]()
//	    x, _ := autodiff.FromSlice(b, []float64{-2, -1, 1, 2}, tensor.Const(4))
//
//	    y, _ := autodiff.LeakyReLU(x.Trace(), 0.5)
//	    loss, _ := autodiff.Mean(y)
//
//	    grads, _ := autodiff.Backward(loss)
//	    g, _ := grads.Of(x) // [0.125 0.125 0.25 0.25]
//	}
package autodiff

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/tensor"
)

// Tensor is a tensor handle that may carry a tape.
type Tensor[E tensor.Float] = autodiff.Tensor[E]

// Tape records backward operations in forward order.
type Tape[E tensor.Float] = autodiff.Tape[E]

// BackwardFunc is a deferred backward computation.
type BackwardFunc[E tensor.Float] = autodiff.BackwardFunc[E]

// Gradients maps tensor IDs to accumulated gradients.
type Gradients[E tensor.Float] = autodiff.Gradients[E]

// Gradient is one tensor's accumulated gradient.
type Gradient[E tensor.Float] = autodiff.Gradient[E]

// UnaryOp describes an elementwise function and its derivative.
type UnaryOp[E tensor.Float] = autodiff.UnaryOp[E]

// BinaryOp describes an elementwise function of two operands.
type BinaryOp[E tensor.Float] = autodiff.BinaryOp[E]

// Errors reported by the engine.
var (
	ErrMissingGradient = autodiff.ErrMissingGradient
	ErrNonScalarOutput = autodiff.ErrNonScalarOutput
	ErrTapeConsumed    = autodiff.ErrTapeConsumed
	ErrSelfMerge       = autodiff.ErrSelfMerge
	ErrShapeMismatch   = autodiff.ErrShapeMismatch
)

// Leaf wraps a raw tensor without a tape.
func Leaf[E tensor.Float](raw *tensor.Raw[E]) *Tensor[E] { return autodiff.Leaf(raw) }

// FromSlice creates a leaf tensor holding a copy of data.
func FromSlice[E tensor.Float](b tensor.Backend[E], data []E, s tensor.Shape) (*Tensor[E], error) {
	return autodiff.FromSlice(b, data, s)
}

// Zeros creates a zero-filled leaf tensor.
func Zeros[E tensor.Float](b tensor.Backend[E], s tensor.Shape) (*Tensor[E], error) {
	return autodiff.Zeros(b, s)
}

// Ones creates a leaf tensor filled with ones.
func Ones[E tensor.Float](b tensor.Backend[E], s tensor.Shape) (*Tensor[E], error) {
	return autodiff.Ones(b, s)
}

// Full creates a leaf tensor filled with v.
func Full[E tensor.Float](b tensor.Backend[E], s tensor.Shape, v E) (*Tensor[E], error) {
	return autodiff.Full(b, s, v)
}

// NewTape creates an empty tape.
func NewTape[E tensor.Float]() *Tape[E] { return autodiff.NewTape[E]() }

// Merge joins the tapes of two operands. b is consumed.
func Merge[E tensor.Float](a, b *Tape[E]) (*Tape[E], error) { return autodiff.Merge(a, b) }

// NewGradients creates an empty gradient store.
func NewGradients[E tensor.Float]() *Gradients[E] { return autodiff.NewGradients[E]() }

// ApplyUnary evaluates a custom unary op and records its backward.
func ApplyUnary[E tensor.Float](op UnaryOp[E], x *Tensor[E]) (*Tensor[E], error) {
	return autodiff.ApplyUnary(op, x)
}

// ApplyBinary evaluates a custom binary op and records its backward.
func ApplyBinary[E tensor.Float](op BinaryOp[E], x, y *Tensor[E]) (*Tensor[E], error) {
	return autodiff.ApplyBinary(op, x, y)
}

// Broadcast presents x as a read-only view of shape dst along axes.
func Broadcast[E tensor.Float](x *Tensor[E], dst tensor.Shape, axes tensor.Axes) (*Tensor[E], error) {
	return autodiff.Broadcast(x, dst, axes)
}

// BroadcastTop broadcasts x to dst by adding leading axes.
func BroadcastTop[E tensor.Float](x *Tensor[E], dst tensor.Shape) (*Tensor[E], error) {
	return autodiff.BroadcastTop(x, dst)
}

// BroadcastBottom broadcasts x to dst by adding trailing axes.
func BroadcastBottom[E tensor.Float](x *Tensor[E], dst tensor.Shape) (*Tensor[E], error) {
	return autodiff.BroadcastBottom(x, dst)
}

// SumAxes sums x along axes.
func SumAxes[E tensor.Float](x *Tensor[E], axes tensor.Axes) (*Tensor[E], error) {
	return autodiff.SumAxes(x, axes)
}

// MeanAxes averages x along axes.
func MeanAxes[E tensor.Float](x *Tensor[E], axes tensor.Axes) (*Tensor[E], error) {
	return autodiff.MeanAxes(x, axes)
}

// Sum reduces x to a scalar by summation.
func Sum[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return autodiff.Sum(x) }

// Mean reduces x to a scalar by averaging.
func Mean[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) { return autodiff.Mean(x) }

// Backward computes gradients of a traced scalar output.
func Backward[E tensor.Float](out *Tensor[E]) (*Gradients[E], error) { return autodiff.Backward(out) }
