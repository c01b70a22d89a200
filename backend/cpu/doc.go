// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the gradtape engine.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support, with single-precision math for float32
//   - Strided kernels that read broadcast views without copying
//   - Large contiguous kernels split across goroutines
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradtape/autodiff"
//	    "github.com/born-ml/gradtape/backend/cpu"
//	    "github.com/born-ml/gradtape/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New[float32]()
//	    x, _ := autodiff.Ones(backend, tensor.Const(2, 3))
//	    y, _ := autodiff.Sum(x)
//	}
//
// # Identifiers
//
// Every tensor a backend creates draws its ID from the backend's allocator.
// Backends share the process-wide allocator unless WithAllocator is given,
// so tensors from different backends never collide.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Kernels do not share mutable
// state; the ID allocator is lock-free.
package cpu
