// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/gradtape/autodiff"
	"github.com/born-ml/gradtape/internal/optim"
	"github.com/born-ml/gradtape/tensor"
)

// Optimizer is the base interface for all optimizers.
type Optimizer[E tensor.Float] = optim.Optimizer[E]

// SGD implements Stochastic Gradient Descent.
type SGD[E tensor.Float] = optim.SGD[E]

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD[E tensor.Float](params []*autodiff.Tensor[E], config SGDConfig) *SGD[E] {
	return optim.NewSGD(params, config)
}

// Adam implements the Adam optimizer.
type Adam[E tensor.Float] = optim.Adam[E]

// AdamConfig holds configuration for Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
func NewAdam[E tensor.Float](params []*autodiff.Tensor[E], config AdamConfig) *Adam[E] {
	return optim.NewAdam(params, config)
}
