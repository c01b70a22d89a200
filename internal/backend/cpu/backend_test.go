package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/gradtape/internal/parallel"
	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

func TestCPUBackend_Metadata(t *testing.T) {
	ids := uid.NewAllocator()
	b := New[float32](WithAllocator(ids))
	assert.Equal(t, "CPU", b.Name())
	assert.Equal(t, tensor.CPU, b.Device())
	assert.Same(t, ids, b.IDs())

	assert.Same(t, uid.Default, New[float64]().IDs())
}

func TestCPUBackend_MapContiguous(t *testing.T) {
	b := New[float64](WithParallel(parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 2}))
	src := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]float64, len(src))
	b.Map(dst, src, []int{2, 4}, []int{4, 1}, func(x float64) float64 { return 2 * x })
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12, 14, 16}, dst)
}

func TestCPUBackend_MapBroadcastView(t *testing.T) {
	b := New[float32]()
	src := []float32{1, 2, 3}
	dst := make([]float32, 6)
	// (3) viewed as (2, 3) along axis 0.
	b.Map(dst, src, []int{2, 3}, []int{0, 1}, func(x float32) float32 { return x })
	assert.Equal(t, []float32{1, 2, 3, 1, 2, 3}, dst)

	// (2) viewed as (2, 3) along axis 1.
	b.Map(dst, src[:2], []int{2, 3}, []int{1, 0}, func(x float32) float32 { return x })
	assert.Equal(t, []float32{1, 1, 1, 2, 2, 2}, dst)
}

func TestCPUBackend_MapTransposed(t *testing.T) {
	b := New[float64]()
	src := []float64{1, 2, 3, 4, 5, 6} // (2, 3)
	dst := make([]float64, 6)
	b.Map(dst, src, []int{3, 2}, []int{1, 3}, func(x float64) float64 { return x })
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, dst)
}

func TestCPUBackend_Zip(t *testing.T) {
	b := New[float64]()
	a := []float64{1, 2, 3, 4, 5, 6}
	c := []float64{10, 20, 30}
	dst := make([]float64, 6)
	b.Zip(dst, a, c, []int{2, 3}, []int{3, 1}, []int{0, 1}, func(x, y float64) float64 { return x + y })
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, dst)

	b.Zip(dst, a, a, []int{2, 3}, []int{3, 1}, []int{3, 1}, func(x, y float64) float64 { return x * y })
	assert.Equal(t, []float64{1, 4, 9, 16, 25, 36}, dst)
}

func TestCPUBackend_SumAxes(t *testing.T) {
	b := New[float64]()
	src := []float64{1, 2, 3, 4, 5, 6} // (2, 3)
	dims := []int{2, 3}
	strides := []int{3, 1}

	tests := []struct {
		name string
		axes shape.Axes
		want []float64
	}{
		{"rows", shape.Axes{0}, []float64{5, 7, 9}},
		{"cols", shape.Axes{1}, []float64{6, 15}},
		{"all", shape.AllAxes(2), []float64{21}},
		{"none", nil, []float64{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(tt.want))
			for i := range dst {
				dst[i] = -100
			}
			b.SumAxes(dst, src, dims, strides, tt.axes)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestCPUBackend_SumAxesOfBroadcastView(t *testing.T) {
	b := New[float64]()
	src := []float64{1, 2, 3}
	dst := make([]float64, 3)
	// Summing a (5, 3) view of (3) over axis 0 multiplies by 5.
	b.SumAxes(dst, src, []int{5, 3}, []int{0, 1}, shape.Axes{0})
	assert.Equal(t, []float64{5, 10, 15}, dst)
}

func TestIsRowMajor(t *testing.T) {
	assert.True(t, isRowMajor(nil, nil))
	assert.True(t, isRowMajor([]int{2, 3}, []int{3, 1}))
	assert.True(t, isRowMajor([]int{1, 3}, []int{0, 1}))
	assert.False(t, isRowMajor([]int{2, 3}, []int{0, 1}))
	assert.False(t, isRowMajor([]int{3, 2}, []int{1, 3}))
}
