// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers driven by the gradients of a backward
// pass.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum and weight decay
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	b := cpu.New[float64]()
//	w, _ := autodiff.FromSlice(b, []float64{0, 0}, tensor.Const(2))
//	opt := optim.NewSGD([]*autodiff.Tensor[float64]{w}, optim.SGDConfig{LR: 0.1})
//
//	for range 100 {
//	    loss := lossOf(w.Trace())
//	    grads, err := autodiff.Backward(loss)
//	    if err != nil {
//	        return err
//	    }
//	    if err := opt.Step(grads); err != nil {
//	        return err
//	    }
//	}
//
// Parameters that did not take part in a pass have no gradient and are left
// unchanged.
package optim
