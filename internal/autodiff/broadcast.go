package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
)

// Broadcast presents x as a view of shape dst, repeating it along axes.
//
// No data is copied: the view reads x's storage with stride 0 on the broadcast
// axes. The view gets its own ID, and its backward sums the view's gradient
// along axes into x's gradient.
//
// A view pins x's storage, so writes through x copy it first. The backward
// pass releases a traced view's pin; untraced views hold it until released
// with Raw().Release().
func Broadcast[E tensor.Float](x *Tensor[E], dst shape.Shape, axes shape.Axes) (*Tensor[E], error) {
	if err := x.tape.usable(); err != nil {
		return nil, errors.Wrap(err, "broadcast")
	}
	in := x.raw
	strides, err := shape.BroadcastStrides(in.Shape(), in.Strides(), dst, axes)
	if err != nil {
		return nil, errors.Wrap(err, "broadcast")
	}
	view := in.View(dst, strides)

	tape := x.takeTape()
	if tape == nil {
		return Leaf(view), nil
	}
	if x.wantsGrad() {
		viewID, dims := view.ID(), dst.Sizes()
		inID, inShape := in.ID(), in.Shape()
		b := in.Backend()
		rowMajor := dst.Strides()
		tape.Record(func(g *Gradients[E]) error {
			defer view.Release()
			gv, ok := g.lookup(viewID)
			if !ok {
				return nil
			}
			contrib := make([]E, inShape.NumElements())
			b.SumAxes(contrib, gv.Data, dims, rowMajor, axes)
			return g.Accumulate(inID, inShape, contrib)
		})
	}
	return &Tensor[E]{raw: view, tape: tape}, nil
}

// BroadcastTop broadcasts x to dst by adding leading axes.
func BroadcastTop[E tensor.Float](x *Tensor[E], dst shape.Shape) (*Tensor[E], error) {
	return Broadcast(x, dst, shape.TopAxes(x.Shape().Rank(), dst.Rank()))
}

// BroadcastBottom broadcasts x to dst by adding trailing axes.
func BroadcastBottom[E tensor.Float](x *Tensor[E], dst shape.Shape) (*Tensor[E], error) {
	return Broadcast(x, dst, shape.BottomAxes(x.Shape().Rank(), dst.Rank()))
}
