package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/autodiff/ops"
	"github.com/born-ml/gradtape/internal/backend/cpu"
	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

const eps = 1e-6

func newBackend() tensor.Backend[float64] {
	return cpu.New[float64](cpu.WithAllocator(uid.NewAllocator()))
}

func leaf(t *testing.T, b tensor.Backend[float64], data ...float64) *autodiff.Tensor[float64] {
	t.Helper()
	x, err := autodiff.FromSlice(b, data, shape.Const(len(data)))
	require.NoError(t, err)
	return x
}

// sumGrad returns d(sum(f(x)))/dx computed by backward.
func sumGrad(t *testing.T, x *autodiff.Tensor[float64], f func(*autodiff.Tensor[float64]) (*autodiff.Tensor[float64], error)) []float64 {
	t.Helper()
	y, err := f(x.Trace())
	require.NoError(t, err)
	s, err := autodiff.Sum(y)
	require.NoError(t, err)
	g, err := autodiff.Backward(s)
	require.NoError(t, err)
	grad, err := g.Of(x)
	require.NoError(t, err)
	return grad.Data
}

// centralDiff approximates f'(x) numerically.
func centralDiff(f func(float64) float64, x float64) float64 {
	const h = 1e-6
	return (f(x+h) - f(x-h)) / (2 * h)
}

func TestUnaryOps_Forward(t *testing.T) {
	tests := []struct {
		name string
		f    func(*autodiff.Tensor[float64]) (*autodiff.Tensor[float64], error)
		want []float64
	}{
		{"relu", ops.ReLU[float64], []float64{0, 0, 0, 0.5, 2}},
		{"neg", ops.Neg[float64], []float64{2, 0.5, 0, -0.5, -2}},
		{"square", ops.Square[float64], []float64{4, 0.25, 0, 0.25, 4}},
		{"scale", func(x *autodiff.Tensor[float64]) (*autodiff.Tensor[float64], error) { return ops.Scale(x, 3) }, []float64{-6, -1.5, 0, 1.5, 6}},
		{"leaky_relu", func(x *autodiff.Tensor[float64]) (*autodiff.Tensor[float64], error) { return ops.LeakyReLU(x, 0.1) }, []float64{-0.2, -0.05, 0, 0.5, 2}},
	}

	b := newBackend()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := tt.f(leaf(t, b, -2, -0.5, 0, 0.5, 2))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, y.Data(), 1e-12)
		})
	}
}

func TestUnaryOps_GradientMatchesNumeric(t *testing.T) {
	tests := []struct {
		name string
		f    func(*autodiff.Tensor[float64]) (*autodiff.Tensor[float64], error)
		ref  func(float64) float64
	}{
		{"exp", ops.Exp[float64], ops.ExpOp[float64]{}.Forward},
		{"sigmoid", ops.Sigmoid[float64], ops.SigmoidOp[float64]{}.Forward},
		{"tanh", ops.Tanh[float64], ops.TanhOp[float64]{}.Forward},
		{"square", ops.Square[float64], ops.SquareOp[float64]{}.Forward},
		{"neg", ops.Neg[float64], func(x float64) float64 { return -x }},
		{
			"leaky_relu",
			func(x *autodiff.Tensor[float64]) (*autodiff.Tensor[float64], error) { return ops.LeakyReLU(x, 0.2) },
			ops.LeakyReLUOp[float64]{Alpha: 0.2}.Forward,
		},
		{"relu", ops.ReLU[float64], ops.ReLUOp[float64]{}.Forward},
	}

	// Away from the kinks of the rectifiers.
	points := []float64{-1.7, -0.3, 0.4, 1.3}
	b := newBackend()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sumGrad(t, leaf(t, b, points...), tt.f)
			for i, p := range points {
				assert.InDelta(t, centralDiff(tt.ref, p), got[i], eps, "at %v", p)
			}
		})
	}
}

func TestBinaryOps_GradientMatchesNumeric(t *testing.T) {
	tests := []struct {
		name string
		f    func(x, y *autodiff.Tensor[float64]) (*autodiff.Tensor[float64], error)
		ref  func(x, y float64) float64
	}{
		{"add", ops.Add[float64], ops.AddOp[float64]{}.Forward},
		{"sub", ops.Sub[float64], ops.SubOp[float64]{}.Forward},
		{"mul", ops.Mul[float64], ops.MulOp[float64]{}.Forward},
		{"div", ops.Div[float64], ops.DivOp[float64]{}.Forward},
		{"prelu", ops.PReLU[float64], ops.PReLUOp[float64]{}.Forward},
	}

	xs := []float64{-1.5, -0.2, 0.7, 2.1}
	ys := []float64{0.3, -1.1, 1.9, 0.6}
	b := newBackend()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := leaf(t, b, xs...), leaf(t, b, ys...)
			z, err := tt.f(x.Trace(), y.Trace())
			require.NoError(t, err)
			for i := range xs {
				assert.InDelta(t, tt.ref(xs[i], ys[i]), z.Data()[i], 1e-12)
			}

			s, err := autodiff.Sum(z)
			require.NoError(t, err)
			g, err := autodiff.Backward(s)
			require.NoError(t, err)
			gx, err := g.Of(x)
			require.NoError(t, err)
			gy, err := g.Of(y)
			require.NoError(t, err)

			for i := range xs {
				dx := centralDiff(func(v float64) float64 { return tt.ref(v, ys[i]) }, xs[i])
				dy := centralDiff(func(v float64) float64 { return tt.ref(xs[i], v) }, ys[i])
				assert.InDelta(t, dx, gx.Data[i], eps, "∂x at %d", i)
				assert.InDelta(t, dy, gy.Data[i], eps, "∂y at %d", i)
			}
		})
	}
}

func TestPReLU_SharedSlope(t *testing.T) {
	b := newBackend()
	x := leaf(t, b, -2, -1, 1, 2)
	a, err := autodiff.FromSlice(b, []float64{0.25}, shape.Scalar())
	require.NoError(t, err)

	slope, err := autodiff.BroadcastTop(a.Trace(), x.Shape())
	require.NoError(t, err)
	y, err := ops.PReLU(x.Trace(), slope)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, -0.25, 1, 2}, y.Data())

	s, err := autodiff.Sum(y)
	require.NoError(t, err)
	g, err := autodiff.Backward(s)
	require.NoError(t, err)

	ga, err := g.Of(a)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-3}, ga.Data, 1e-12)
	gx, err := g.Of(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 1, 1}, gx.Data, 1e-12)
}

func TestOps_Float32(t *testing.T) {
	b := cpu.New[float32](cpu.WithAllocator(uid.NewAllocator()))
	x, err := autodiff.FromSlice(b, []float32{-1, 0, 1}, shape.Const(3))
	require.NoError(t, err)

	y, err := ops.Tanh(x.Trace())
	require.NoError(t, err)
	y, err = ops.Exp(y)
	require.NoError(t, err)
	m, err := autodiff.Mean(y)
	require.NoError(t, err)

	g, err := autodiff.Backward(m)
	require.NoError(t, err)
	grad, err := g.Of(x)
	require.NoError(t, err)

	ref := ops.TanhOp[float64]{}
	for i, v := range []float64{-1, 0, 1} {
		th := ref.Forward(v)
		want := ops.ExpOp[float64]{}.Forward(th) * (1 - th*th) / 3
		assert.InDelta(t, want, float64(grad.Data[i]), 1e-5)
	}
}

func TestOps_Names(t *testing.T) {
	assert.Equal(t, "leaky_relu", ops.LeakyReLUOp[float64]{}.Name())
	assert.Equal(t, "prelu", ops.PReLUOp[float32]{}.Name())
	assert.Equal(t, "div", ops.DivOp[float64]{}.Name())
}
