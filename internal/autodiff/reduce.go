package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
)

// SumAxes sums x along axes.
//
// Backward broadcasts the output gradient back over the reduced axes.
func SumAxes[E tensor.Float](x *Tensor[E], axes shape.Axes) (*Tensor[E], error) {
	return reduceAxes(x, axes, "sum", false)
}

// MeanAxes averages x along axes.
func MeanAxes[E tensor.Float](x *Tensor[E], axes shape.Axes) (*Tensor[E], error) {
	return reduceAxes(x, axes, "mean", true)
}

// Sum reduces x to a scalar by summation.
func Sum[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) {
	return SumAxes(x, shape.AllAxes(x.Shape().Rank()))
}

// Mean reduces x to a scalar by averaging.
func Mean[E tensor.Float](x *Tensor[E]) (*Tensor[E], error) {
	return MeanAxes(x, shape.AllAxes(x.Shape().Rank()))
}

func reduceAxes[E tensor.Float](x *Tensor[E], axes shape.Axes, name string, mean bool) (*Tensor[E], error) {
	if err := x.tape.usable(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	in := x.raw
	b := in.Backend()
	reduced, err := shape.Reduce(in.Shape(), axes)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	// Reading the reduced gradient through broadcast strides repeats it over
	// the axes that were summed away.
	spread, err := shape.BroadcastStrides(reduced, reduced.Strides(), in.Shape(), axes)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	out, err := tensor.New(b, reduced)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	dst, err := out.Writable()
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	dims := in.Shape().Sizes()
	b.SumAxes(dst, in.Buffer(), dims, in.Strides(), axes)

	scale := E(1)
	if mean {
		scale = E(1) / E(in.NumElements()/out.NumElements())
		b.Map(dst, dst, reduced.Sizes(), reduced.Strides(), func(v E) E { return v * scale })
	}

	tape := x.takeTape()
	if tape == nil {
		return Leaf(out), nil
	}
	if x.wantsGrad() {
		outID := out.ID()
		inID, inShape := in.ID(), in.Shape()
		tape.Record(func(g *Gradients[E]) error {
			gy, ok := g.lookup(outID)
			if !ok {
				return nil
			}
			contrib := make([]E, inShape.NumElements())
			b.Map(contrib, gy.Data, dims, spread, func(v E) E { return v * scale })
			return g.Accumulate(inID, inShape, contrib)
		})
	}
	return &Tensor[E]{raw: out, tape: tape}, nil
}
