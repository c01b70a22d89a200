// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/gradtape/internal/backend/cpu"
	"github.com/born-ml/gradtape/internal/parallel"
	"github.com/born-ml/gradtape/internal/uid"
	"github.com/born-ml/gradtape/tensor"
)

// Backend represents the CPU backend implementation.
type Backend[E tensor.Float] = internalcpu.CPUBackend[E]

// Option configures a Backend.
type Option = internalcpu.Option

// Compile-time check that Backend implements tensor.Backend.
var (
	_ tensor.Backend[float32] = (*Backend[float32])(nil)
	_ tensor.Backend[float64] = (*Backend[float64])(nil)
)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New[float32]()
//	x, err := autodiff.Zeros(backend, tensor.Const(2, 3))
func New[E tensor.Float](opts ...Option) *Backend[E] {
	return internalcpu.New[E](opts...)
}

// WithAllocator makes the backend draw tensor IDs from a.
func WithAllocator(a *uid.Allocator) Option {
	return internalcpu.WithAllocator(a)
}

// WithParallelism sets how many goroutines split large contiguous kernels
// and the smallest chunk handed to one of them. Zero values keep the
// defaults.
func WithParallelism(workers, minChunk int) Option {
	cfg := parallel.DefaultConfig()
	if workers > 0 {
		cfg.NumWorkers = workers
		cfg.Enabled = workers > 1
	}
	if minChunk > 0 {
		cfg.MinChunkSize = minChunk
	}
	return internalcpu.WithParallel(cfg)
}
