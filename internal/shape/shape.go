// Package shape implements shapes with static and dynamic dimensions and the
// broadcast/reduce relations between them.
//
// A relation "src broadcasts to dst along axes X" holds when removing the axes
// in X from dst leaves exactly src. Reduction is the inverse relation. Both are
// limited to MaxRank dimensions.
package shape

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxRank is the highest supported tensor rank.
const MaxRank = 6

// Error kinds reported by the algebra.
var (
	// ErrShapeMismatch reports sizes that disagree at runtime although the
	// relation between the shapes is structurally valid.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidRelation reports a relation that can never hold: wrong rank
	// arithmetic or two static sizes that differ.
	ErrInvalidRelation = errors.New("invalid shape relation")

	// ErrInvalidAxes reports an axis-set that is unordered, duplicated or out of bounds.
	ErrInvalidAxes = errors.New("invalid axes")

	// ErrInvalidShape reports a rank above MaxRank or a non-positive size.
	ErrInvalidShape = errors.New("invalid shape")
)

// Dim is one dimension of a shape. Static dimensions are fixed when the shape
// is declared; dynamic ones are only known at runtime.
type Dim struct {
	Size   int
	Static bool
}

// C returns a static dimension.
func C(n int) Dim { return Dim{Size: n, Static: true} }

// D returns a dynamic dimension.
func D(n int) Dim { return Dim{Size: n} }

// String formats static sizes plainly and dynamic sizes with a '~' prefix.
func (d Dim) String() string {
	if d.Static {
		return strconv.Itoa(d.Size)
	}
	return "~" + strconv.Itoa(d.Size)
}

// Shape is an ordered list of dimensions. The rank is len(Shape).
type Shape []Dim

// Const builds a shape made only of static dimensions.
func Const(sizes ...int) Shape {
	s := make(Shape, len(sizes))
	for i, n := range sizes {
		s[i] = C(n)
	}
	return s
}

// Dyn builds a shape made only of dynamic dimensions.
func Dyn(sizes ...int) Shape {
	s := make(Shape, len(sizes))
	for i, n := range sizes {
		s[i] = D(n)
	}
	return s
}

// Of builds a shape from explicit dimensions.
func Of(dims ...Dim) Shape {
	return append(Shape(nil), dims...)
}

// Scalar is the rank-0 shape.
func Scalar() Shape { return Shape{} }

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// IsScalar reports whether the shape has rank 0.
func (s Shape) IsScalar() bool { return len(s) == 0 }

// Sizes returns the dimension sizes.
func (s Shape) Sizes() []int {
	sizes := make([]int, len(s))
	for i, d := range s {
		sizes[i] = d.Size
	}
	return sizes
}

// NumElements returns the total number of elements. A scalar has one.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d.Size
	}
	return n
}

// Validate checks the rank bound and that every size is positive.
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return errors.Wrapf(ErrInvalidShape, "rank %d exceeds maximum %d", len(s), MaxRank)
	}
	for i, d := range s {
		if d.Size <= 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension %d is %d (must be > 0)", i, d.Size)
		}
	}
	return nil
}

// Equal compares sizes only; static and dynamic dims of equal size are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Size != other[i].Size {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// Strides calculates row-major strides: stride[i] is the product of all sizes after i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1].Size
	}
	return strides
}

// String formats the shape as "(2, ~3)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
