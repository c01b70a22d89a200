package optim

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

// SGD implements Stochastic Gradient Descent with optional momentum and
// weight decay.
//
// Update rule without momentum:
//
//	param = param - lr * (gradient + weight_decay * param)
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD[E tensor.Float] struct {
	params      []*autodiff.Tensor[E]
	lr          E
	momentum    E
	weightDecay E
	velocities  map[uid.ID][]E
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR          float64 // Learning rate (default: 0.01)
	Momentum    float64 // Momentum factor (default: 0.0, range: [0, 1))
	WeightDecay float64 // L2 penalty (default: 0.0)
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD[E tensor.Float](params []*autodiff.Tensor[E], config SGDConfig) *SGD[E] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[E]{
		params:      params,
		lr:          E(config.LR),
		momentum:    E(config.Momentum),
		weightDecay: E(config.WeightDecay),
		velocities:  make(map[uid.ID][]E),
	}
}

// Step performs a single optimization step.
func (s *SGD[E]) Step(grads *autodiff.Gradients[E]) error {
	for _, param := range s.params {
		grad, data, err := paramGrad(param, grads)
		if err != nil {
			return err
		}
		if grad == nil {
			continue
		}

		var velocity []E
		if s.momentum != 0 {
			velocity = s.velocities[param.ID()]
			if velocity == nil {
				velocity = make([]E, len(data))
				s.velocities[param.ID()] = velocity
			}
		}
		for i := range data {
			d := grad[i] + s.weightDecay*data[i]
			if velocity != nil {
				velocity[i] = s.momentum*velocity[i] + d
				d = velocity[i]
			}
			data[i] -= s.lr * d
		}
	}
	return nil
}

// LR returns the current learning rate.
func (s *SGD[E]) LR() E {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD[E]) SetLR(lr E) {
	s.lr = lr
}

// StateDict returns the momentum buffers keyed "velocity.{param_index}".
// Without momentum it is empty.
func (s *SGD[E]) StateDict() map[string][]E {
	state := make(map[string][]E)
	for i, param := range s.params {
		if v, ok := s.velocities[param.ID()]; ok {
			state[fmt.Sprintf("velocity.%d", i)] = append([]E(nil), v...)
		}
	}
	return state
}

// LoadStateDict restores momentum buffers saved by StateDict.
func (s *SGD[E]) LoadStateDict(state map[string][]E) error {
	if s.momentum == 0 {
		return nil
	}
	velocities := make(map[uid.ID][]E)
	for i, param := range s.params {
		v, ok := state[fmt.Sprintf("velocity.%d", i)]
		if !ok {
			continue
		}
		if len(v) != param.Shape().NumElements() {
			return errors.Wrapf(autodiff.ErrShapeMismatch,
				"velocity for parameter %d has %d elements, parameter has shape %s", i, len(v), param.Shape())
		}
		velocities[param.ID()] = append([]E(nil), v...)
	}
	s.velocities = velocities
	return nil
}
