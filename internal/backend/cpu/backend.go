// Package cpu implements the reference CPU backend: strided elementwise and
// reduction kernels in pure Go.
package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/gradtape/internal/parallel"
	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

// CPUBackend implements tensor.Backend on the CPU.
type CPUBackend[E tensor.Float] struct {
	ids *uid.Allocator
	par parallel.Config
}

type options struct {
	ids *uid.Allocator
	par parallel.Config
}

// Option configures a CPUBackend.
type Option func(*options)

// WithAllocator makes the backend issue IDs from a.
// Backends whose tensors meet in one computation must share an allocator.
func WithAllocator(a *uid.Allocator) Option {
	return func(o *options) { o.ids = a }
}

// WithParallel sets how contiguous kernels are split across goroutines.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) { o.par = cfg }
}

// New creates a CPU backend. Without WithAllocator it uses uid.Default.
func New[E tensor.Float](opts ...Option) *CPUBackend[E] {
	o := options{ids: uid.Default, par: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return &CPUBackend[E]{ids: o.ids, par: o.par}
}

// Name returns the backend name.
func (cpu *CPUBackend[E]) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend[E]) Device() tensor.Device {
	return tensor.CPU
}

// IDs returns the backend's identifier allocator.
func (cpu *CPUBackend[E]) IDs() *uid.Allocator {
	return cpu.ids
}

// Map computes dst[i] = fn(src[offset(i)]).
func (cpu *CPUBackend[E]) Map(dst, src []E, dims, srcStrides []int, fn func(E) E) {
	if isRowMajor(dims, srcStrides) {
		parallel.Chunks(len(dst), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = fn(src[i])
			}
		}, cpu.par)
		return
	}
	walk(dims, [][]int{srcStrides}, func(i int, offs []int) {
		dst[i] = fn(src[offs[0]])
	})
}

// Zip computes dst[i] = fn(a[offsetA(i)], b[offsetB(i)]).
func (cpu *CPUBackend[E]) Zip(dst, a, b []E, dims, aStrides, bStrides []int, fn func(x, y E) E) {
	if isRowMajor(dims, aStrides) && isRowMajor(dims, bStrides) {
		parallel.Chunks(len(dst), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = fn(a[i], b[i])
			}
		}, cpu.par)
		return
	}
	walk(dims, [][]int{aStrides, bStrides}, func(i int, offs []int) {
		dst[i] = fn(a[offs[0]], b[offs[1]])
	})
}

// SumAxes sums src along axes into the contiguous reduced buffer dst.
func (cpu *CPUBackend[E]) SumAxes(dst, src []E, dims, srcStrides []int, axes shape.Axes) {
	for i := range dst {
		dst[i] = 0
	}
	full := shape.Dyn(dims...)
	reduced, err := shape.Reduce(full, axes)
	if err != nil {
		exceptions.Panicf("sum axes: %v", err)
	}
	// Reading dst through broadcast strides maps every source index onto
	// the reduced element it contributes to.
	dstStrides, err := shape.BroadcastStrides(reduced, reduced.Strides(), full, axes)
	if err != nil {
		exceptions.Panicf("sum axes: %v", err)
	}
	walk(dims, [][]int{srcStrides, dstStrides}, func(_ int, offs []int) {
		dst[offs[1]] += src[offs[0]]
	})
}
