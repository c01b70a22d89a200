// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides shapes, storage handles and the backend contract of
// the gradtape engine.
//
// # Overview
//
// This package provides:
//   - Shape and Dim: sizes with a static/dynamic tag per axis, rank 0 to 6
//   - Axes: ordered axis-sets relating a shape to a broadcast or reduced one
//   - Raw: a strided handle to reference-counted storage
//   - Backend: the kernel contract implemented by compute backends
//
// # Shapes
//
// Static sizes are fixed when a shape is built with Const; dynamic sizes come
// from Dyn and are only checked when tensors meet:
//
//	s := tensor.Const(2, 3)      // (2, 3)
//	d := tensor.Dyn(4)           // (~4)
//	m := tensor.Of(tensor.C(2), tensor.D(5))
//
// # Broadcasting
//
// A shape S broadcasts to D along axes X when D without X equals S:
//
//	err := tensor.CheckBroadcast(tensor.Const(3), tensor.Const(5, 3), tensor.TopAxes(1, 2))
//
// Reduction is the inverse relation. Structural errors report
// ErrInvalidRelation; size disagreements involving a dynamic axis report
// ErrShapeMismatch.
//
// # Storage
//
// Broadcast views share the storage of their source with zero strides and are
// read-only. Writable copies shared storage before handing it out, so values
// captured for a backward pass are never overwritten.
package tensor
