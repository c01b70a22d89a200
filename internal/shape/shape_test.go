package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Scalar(), 1},
		{"vector", Const(4), 4},
		{"matrix", Const(2, 3), 6},
		{"mixed", Of(C(2), D(3), C(4)), 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShape_Strides(t *testing.T) {
	assert.Equal(t, []int{}, Scalar().Strides())
	assert.Equal(t, []int{1}, Const(5).Strides())
	assert.Equal(t, []int{12, 4, 1}, Const(2, 3, 4).Strides())
}

func TestShape_Validate(t *testing.T) {
	require.NoError(t, Const(1, 2, 3, 4, 5, 6).Validate())
	assert.ErrorIs(t, Const(1, 1, 1, 1, 1, 1, 1).Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Const(2, 0).Validate(), ErrInvalidShape)
}

func TestShape_EqualIgnoresStaticness(t *testing.T) {
	assert.True(t, Const(2, 3).Equal(Dyn(2, 3)))
	assert.False(t, Const(2, 3).Equal(Const(3, 2)))
	assert.False(t, Const(2).Equal(Const(2, 1)))
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "()", Scalar().String())
	assert.Equal(t, "(2, ~3)", Of(C(2), D(3)).String())
}

func TestNewAxes(t *testing.T) {
	a, err := NewAxes(3, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, Axes{0, 2}, a)

	_, err = NewAxes(3, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidAxes)
	_, err = NewAxes(3, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidAxes)
	_, err = NewAxes(2, 2)
	assert.ErrorIs(t, err, ErrInvalidAxes)
	_, err = NewAxes(2, -1)
	assert.ErrorIs(t, err, ErrInvalidAxes)
}

func TestTopBottomAxes(t *testing.T) {
	assert.Equal(t, Axes{0, 1}, TopAxes(1, 3))
	assert.Equal(t, Axes{1, 2}, BottomAxes(1, 3))
	assert.Equal(t, Axes{0, 1, 2}, TopAxes(0, 3))
	assert.Equal(t, Axes{0, 1, 2}, BottomAxes(0, 3))
	assert.Empty(t, TopAxes(2, 2))
	assert.Empty(t, BottomAxes(3, 1))
	assert.Equal(t, AllAxes(4), TopAxes(0, 4))
}
