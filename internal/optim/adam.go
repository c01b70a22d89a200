package optim

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[E tensor.Float] struct {
	params []*autodiff.Tensor[E]
	lr     E
	beta1  E
	beta2  E
	eps    E
	t      int            // Timestep for bias correction
	m      map[uid.ID][]E // First moment estimates
	v      map[uid.ID][]E // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer. Zero fields take their defaults.
func NewAdam[E tensor.Float](params []*autodiff.Tensor[E], config AdamConfig) *Adam[E] {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam[E]{
		params: params,
		lr:     E(config.LR),
		beta1:  E(config.Betas[0]),
		beta2:  E(config.Betas[1]),
		eps:    E(config.Eps),
		m:      make(map[uid.ID][]E),
		v:      make(map[uid.ID][]E),
	}
}

// Step performs a single optimization step. The timestep advances even when
// no parameter has a gradient.
func (a *Adam[E]) Step(grads *autodiff.Gradients[E]) error {
	a.t++
	c1 := 1 - pow(a.beta1, a.t)
	c2 := 1 - pow(a.beta2, a.t)

	for _, param := range a.params {
		grad, data, err := paramGrad(param, grads)
		if err != nil {
			return err
		}
		if grad == nil {
			continue
		}
		id := param.ID()
		m, v := a.m[id], a.v[id]
		if m == nil {
			m, v = make([]E, len(data)), make([]E, len(data))
			a.m[id], a.v[id] = m, v
		}
		for i, g := range grad {
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g
			data[i] -= a.lr * (m[i] / c1) / (sqrt(v[i]/c2) + a.eps)
		}
	}
	return nil
}

// LR returns the current learning rate.
func (a *Adam[E]) LR() E {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam[E]) SetLR(lr E) {
	a.lr = lr
}

// Timestep returns the number of steps taken.
func (a *Adam[E]) Timestep() int {
	return a.t
}
