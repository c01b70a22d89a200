package shape

import "github.com/pkg/errors"

// Axes is an ordered set of axis indices, strictly increasing.
type Axes []int

// NewAxes validates axes against a shape of the given rank.
func NewAxes(rank int, axes ...int) (Axes, error) {
	a := Axes(append([]int(nil), axes...))
	if err := a.validate(rank); err != nil {
		return nil, err
	}
	return a, nil
}

// AllAxes returns every axis of a shape of the given rank.
// Reducing along it yields a scalar.
func AllAxes(rank int) Axes {
	return axisRange(0, rank)
}

// TopAxes returns the leading axes introduced when a shape of srcRank is
// broadcast to dstRank by prepending dimensions.
func TopAxes(srcRank, dstRank int) Axes {
	return axisRange(0, dstRank-srcRank)
}

// BottomAxes returns the trailing axes introduced when a shape of srcRank is
// broadcast to dstRank by appending dimensions.
func BottomAxes(srcRank, dstRank int) Axes {
	return axisRange(srcRank, dstRank)
}

func axisRange(from, to int) Axes {
	if to < from {
		return nil
	}
	a := make(Axes, 0, to-from)
	for i := from; i < to; i++ {
		a = append(a, i)
	}
	return a
}

// Contains reports whether axis i is in the set.
func (a Axes) Contains(i int) bool {
	for _, ax := range a {
		if ax == i {
			return true
		}
		if ax > i {
			return false
		}
	}
	return false
}

func (a Axes) validate(rank int) error {
	if len(a) > MaxRank {
		return errors.Wrapf(ErrInvalidAxes, "%d axes exceed maximum %d", len(a), MaxRank)
	}
	for i, ax := range a {
		if ax < 0 || ax >= rank {
			return errors.Wrapf(ErrInvalidAxes, "axis %d out of bounds for rank %d", ax, rank)
		}
		if i > 0 && ax <= a[i-1] {
			return errors.Wrapf(ErrInvalidAxes, "axes %v are not strictly increasing", []int(a))
		}
	}
	return nil
}
