package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtape/internal/backend/cpu"
	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, tensor.Float32, tensor.DataTypeOf[float32]())
	assert.Equal(t, tensor.Float64, tensor.DataTypeOf[float64]())
	assert.Equal(t, 4, tensor.Float32.Size())
	assert.Equal(t, "float64", tensor.Float64.String())
}

func TestNew_AssignsFreshIDs(t *testing.T) {
	ids := uid.NewAllocator()
	b := cpu.New[float32](cpu.WithAllocator(ids))

	a, err := tensor.New(b, shape.Const(2, 3))
	require.NoError(t, err)
	c, err := tensor.New(b, shape.Const(2, 3))
	require.NoError(t, err)

	assert.Equal(t, uid.ID(1), a.ID())
	assert.Equal(t, uid.ID(2), c.ID())
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, a.Data())
	assert.Equal(t, tensor.Float32, a.DType())

	_, err = tensor.New(b, shape.Const(2, 0))
	assert.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	b := cpu.New[float64]()
	r, err := tensor.FromSlice(b, []float64{1, 2, 3, 4, 5, 6}, shape.Const(2, 3))
	require.NoError(t, err)

	v, err := r.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = r.At(2, 0)
	assert.Error(t, err)
	_, err = r.At(0)
	assert.Error(t, err)
	_, err = r.Item()
	assert.Error(t, err)

	_, err = tensor.FromSlice(b, []float64{1, 2}, shape.Const(3))
	assert.Error(t, err)
}

func TestFull_Item(t *testing.T) {
	b := cpu.New[float64]()
	r, err := tensor.Full(b, shape.Scalar(), 2.5)
	require.NoError(t, err)
	v, err := r.Item()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestView_SharesStorageReadOnly(t *testing.T) {
	b := cpu.New[float64]()
	r, err := tensor.FromSlice(b, []float64{1, 2, 3}, shape.Const(3))
	require.NoError(t, err)

	dst := shape.Const(2, 3)
	strides, err := shape.BroadcastStrides(r.Shape(), r.Strides(), dst, shape.Axes{0})
	require.NoError(t, err)
	view := r.View(dst, strides)

	assert.NotEqual(t, r.ID(), view.ID())
	assert.True(t, view.IsView())
	assert.False(t, r.IsView())
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, view.Data())

	_, err = view.Writable()
	assert.ErrorIs(t, err, tensor.ErrReadOnlyView)

	// Writing through the owner copies the shared storage first.
	buf, err := r.Writable()
	require.NoError(t, err)
	buf[0] = 100
	assert.Equal(t, []float64{100, 2, 3}, r.Data())
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, view.Data())
}

func TestWritable_UniqueStorageInPlace(t *testing.T) {
	b := cpu.New[float32]()
	r, err := tensor.FromSlice(b, []float32{1, 2}, shape.Const(2))
	require.NoError(t, err)

	buf, err := r.Writable()
	require.NoError(t, err)
	buf[1] = 7
	again, err := r.Writable()
	require.NoError(t, err)
	assert.Equal(t, float32(7), again[1])
	assert.True(t, r.IsContiguous())
}

func TestWritable_CopiesSharedStorage(t *testing.T) {
	b := cpu.New[float64]()
	r, err := tensor.FromSlice(b, []float64{1, 2, 3}, shape.Const(3))
	require.NoError(t, err)
	view := r.View(shape.Const(2, 3), []int{0, 1})

	buf, err := r.Writable()
	require.NoError(t, err)
	buf[0] = 10

	assert.Equal(t, []float64{10, 2, 3}, r.Data())
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, view.Data())
}

func TestSnapshot_KeepsValuesUntilReleased(t *testing.T) {
	b := cpu.New[float64]()
	r, err := tensor.FromSlice(b, []float64{4, 5}, shape.Const(2))
	require.NoError(t, err)

	snap := r.Snapshot()
	assert.Equal(t, r.ID(), snap.ID())

	buf, err := r.Writable()
	require.NoError(t, err)
	buf[1] = 50
	assert.Equal(t, []float64{4, 5}, snap.Data())
	assert.Equal(t, []float64{4, 50}, r.Data())
	snap.Release()

	// r now owns its copy alone and writes in place.
	first, err := r.Writable()
	require.NoError(t, err)
	second, err := r.Writable()
	require.NoError(t, err)
	assert.Same(t, &first[0], &second[0])
}

func TestAt(t *testing.T) {
	b := cpu.New[float32]()
	r, err := tensor.FromSlice(b, []float32{1, 2, 3, 4, 5, 6}, shape.Const(2, 3))
	require.NoError(t, err)

	v, err := r.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(4), v)

	_, err = r.At(2, 0)
	assert.Error(t, err)
	_, err = r.At(0)
	assert.Error(t, err)
}

func TestRelease_OnlyFirstCallCounts(t *testing.T) {
	b := cpu.New[float64]()
	r, err := tensor.FromSlice(b, []float64{1, 2, 3}, shape.Const(3))
	require.NoError(t, err)
	view := r.View(shape.Const(2, 3), []int{0, 1})

	view.Release()
	view.Release()

	// r is the sole owner again: writes are in place and its values survive.
	first, err := r.Writable()
	require.NoError(t, err)
	second, err := r.Writable()
	require.NoError(t, err)
	assert.Same(t, &first[0], &second[0])
	assert.Equal(t, []float64{1, 2, 3}, r.Data())
}

func TestWritable_ReleasedHandleCopies(t *testing.T) {
	b := cpu.New[float64]()
	r, err := tensor.FromSlice(b, []float64{1, 2}, shape.Const(2))
	require.NoError(t, err)

	snap := r.Snapshot()
	snap.Release()
	buf, err := snap.Writable()
	require.NoError(t, err)
	buf[0] = 9

	assert.Equal(t, []float64{9, 2}, snap.Data())
	assert.Equal(t, []float64{1, 2}, r.Data())
}
