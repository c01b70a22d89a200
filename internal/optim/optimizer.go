// Package optim implements optimizers that consume the gradients of a
// backward pass.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum and weight decay
//   - Adam: Adaptive Moment Estimation
//
// Parameters are tensor handles. An optimizer looks up each parameter's
// gradient by ID and writes the update through the parameter's storage, so
// the ID and every handle sharing it observe the new values.
//
// Example usage:
//
//	sgd := optim.NewSGD([]*autodiff.Tensor[float64]{w, b}, optim.SGDConfig{LR: 0.1})
//
//	for step := range steps {
//	    loss := computeLoss(w.Trace(), b.Trace())
//	    grads, err := autodiff.Backward(loss)
//	    if err != nil {
//	        return err
//	    }
//	    if err := sgd.Step(grads); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer[E tensor.Float] interface {
	// Step applies one update to every parameter that has a gradient in
	// grads. Parameters that did not take part in the pass are skipped.
	Step(grads *autodiff.Gradients[E]) error

	// LR returns the current learning rate.
	LR() E

	// SetLR updates the learning rate, for scheduling.
	SetLR(lr E)
}

// paramGrad returns the gradient and the writable buffer of param, or nil
// buffers when param has no gradient.
func paramGrad[E tensor.Float](param *autodiff.Tensor[E], grads *autodiff.Gradients[E]) (grad, data []E, err error) {
	if param == nil || !grads.Has(param.ID()) {
		return nil, nil, nil
	}
	g, err := grads.Read(param.ID())
	if err != nil {
		return nil, nil, err
	}
	if !g.Shape.Equal(param.Shape()) {
		return nil, nil, errors.Wrapf(autodiff.ErrShapeMismatch,
			"gradient of parameter %s has shape %s, parameter has %s", param.ID(), g.Shape, param.Shape())
	}
	data, err = param.Raw().Writable()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parameter %s", param.ID())
	}
	return g.Data, data, nil
}

func sqrt[E tensor.Float](x E) E {
	if v, ok := any(x).(float32); ok {
		return E(math32.Sqrt(v))
	}
	return E(math.Sqrt(float64(x)))
}

func pow[E tensor.Float](x E, n int) E {
	if v, ok := any(x).(float32); ok {
		return E(math32.Pow(v, float32(n)))
	}
	return E(math.Pow(float64(x), float64(n)))
}
