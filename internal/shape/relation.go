package shape

import "github.com/pkg/errors"

// CheckBroadcast verifies that src broadcasts to dst along axes.
//
// Structural failures and disagreeing static sizes return ErrInvalidRelation.
// When a compared pair has a dynamic side the sizes are checked at runtime and
// a disagreement returns ErrShapeMismatch. A non-positive size anywhere in
// either shape, broadcast axes included, returns ErrInvalidShape.
func CheckBroadcast(src, dst Shape, axes Axes) error {
	if err := checkRanks(src.Rank(), dst.Rank(), axes); err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "source %s", src)
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrapf(err, "destination %s", dst)
	}
	j := 0
	for i, d := range dst {
		if axes.Contains(i) {
			continue
		}
		s := src[j]
		j++
		if s.Size == d.Size {
			continue
		}
		if s.Static && d.Static {
			return errors.Wrapf(ErrInvalidRelation,
				"%s cannot broadcast to %s along %v: axis %d is %d, want %d", src, dst, []int(axes), i, d.Size, s.Size)
		}
		return errors.Wrapf(ErrShapeMismatch,
			"broadcast %s to %s along %v: axis %d is %d, want %d", src, dst, []int(axes), i, d.Size, s.Size)
	}
	return nil
}

// CanBroadcast is the boolean form of CheckBroadcast.
func CanBroadcast(src, dst Shape, axes Axes) bool {
	return CheckBroadcast(src, dst, axes) == nil
}

// CheckReduce verifies that src reduces to dst along axes.
func CheckReduce(src, dst Shape, axes Axes) error {
	return CheckBroadcast(dst, src, axes)
}

func checkRanks(srcRank, dstRank int, axes Axes) error {
	if dstRank > MaxRank {
		return errors.Wrapf(ErrInvalidRelation, "rank %d exceeds maximum %d", dstRank, MaxRank)
	}
	if err := axes.validate(dstRank); err != nil {
		return err
	}
	if srcRank+len(axes) != dstRank {
		return errors.Wrapf(ErrInvalidRelation,
			"rank %d plus %d axes does not make rank %d", srcRank, len(axes), dstRank)
	}
	return nil
}

// BroadcastStrides rewrites src strides for a view of shape dst: every axis in
// axes gets stride 0 and the remaining axes take the source strides in order.
func BroadcastStrides(src Shape, srcStrides []int, dst Shape, axes Axes) ([]int, error) {
	if len(srcStrides) != src.Rank() {
		return nil, errors.Errorf("got %d strides for shape %s", len(srcStrides), src)
	}
	if err := CheckBroadcast(src, dst, axes); err != nil {
		return nil, err
	}
	strides := make([]int, dst.Rank())
	j := 0
	for i := range strides {
		if axes.Contains(i) {
			continue
		}
		strides[i] = srcStrides[j]
		j++
	}
	return strides, nil
}

// Reduce removes axes from src. Static dimensions stay static.
func Reduce(src Shape, axes Axes) (Shape, error) {
	if err := axes.validate(src.Rank()); err != nil {
		return nil, err
	}
	dst := make(Shape, 0, src.Rank()-len(axes))
	for i, d := range src {
		if !axes.Contains(i) {
			dst = append(dst, d)
		}
	}
	return dst, nil
}

// ReduceTo checks that src reduces to dst along axes and returns the shape
// actually produced by the reduction.
func ReduceTo(src, dst Shape, axes Axes) (Shape, error) {
	if err := CheckReduce(src, dst, axes); err != nil {
		return nil, err
	}
	return Reduce(src, axes)
}
