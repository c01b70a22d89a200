// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
)

// Float is the constraint for differentiable element types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents a compute device.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Backend executes elementwise and reduction kernels.
type Backend[E Float] = tensor.Backend[E]

// Raw is a strided handle to shared storage.
type Raw[E Float] = tensor.Raw[E]

// Dim is one axis size with its static tag.
type Dim = shape.Dim

// Shape is an ordered list of dimensions.
type Shape = shape.Shape

// Axes is a strictly increasing set of axis indices.
type Axes = shape.Axes

// MaxRank is the highest supported rank.
const MaxRank = shape.MaxRank

// Errors reported by shape relations and storage.
var (
	ErrInvalidShape    = shape.ErrInvalidShape
	ErrInvalidAxes     = shape.ErrInvalidAxes
	ErrInvalidRelation = shape.ErrInvalidRelation
	ErrShapeMismatch   = shape.ErrShapeMismatch
	ErrReadOnlyView    = tensor.ErrReadOnlyView
)

// C returns a static dimension.
func C(n int) Dim { return shape.C(n) }

// D returns a dynamic dimension.
func D(n int) Dim { return shape.D(n) }

// Const returns a shape with every dimension static.
func Const(sizes ...int) Shape { return shape.Const(sizes...) }

// Dyn returns a shape with every dimension dynamic.
func Dyn(sizes ...int) Shape { return shape.Dyn(sizes...) }

// Of returns a shape from explicit dimensions.
func Of(dims ...Dim) Shape { return shape.Of(dims...) }

// Scalar returns the rank-0 shape.
func Scalar() Shape { return shape.Scalar() }

// NewAxes validates axes against a shape of the given rank.
func NewAxes(rank int, axes ...int) (Axes, error) { return shape.NewAxes(rank, axes...) }

// AllAxes returns every axis of a shape of the given rank.
func AllAxes(rank int) Axes { return shape.AllAxes(rank) }

// TopAxes returns the leading axes added when broadcasting srcRank to dstRank.
func TopAxes(srcRank, dstRank int) Axes { return shape.TopAxes(srcRank, dstRank) }

// BottomAxes returns the trailing axes added when broadcasting srcRank to dstRank.
func BottomAxes(srcRank, dstRank int) Axes { return shape.BottomAxes(srcRank, dstRank) }

// CheckBroadcast verifies that src broadcasts to dst along axes.
func CheckBroadcast(src, dst Shape, axes Axes) error { return shape.CheckBroadcast(src, dst, axes) }

// CheckReduce verifies that src reduces to dst along axes.
func CheckReduce(src, dst Shape, axes Axes) error { return shape.CheckReduce(src, dst, axes) }

// Reduce removes axes from src.
func Reduce(src Shape, axes Axes) (Shape, error) { return shape.Reduce(src, axes) }

// BroadcastStrides rewrites src strides for a broadcast view of shape dst.
func BroadcastStrides(src Shape, srcStrides []int, dst Shape, axes Axes) ([]int, error) {
	return shape.BroadcastStrides(src, srcStrides, dst, axes)
}

// New allocates a zero-filled tensor.
func New[E Float](b Backend[E], s Shape) (*Raw[E], error) { return tensor.New(b, s) }

// FromSlice creates a tensor holding a copy of data.
func FromSlice[E Float](b Backend[E], data []E, s Shape) (*Raw[E], error) {
	return tensor.FromSlice(b, data, s)
}
