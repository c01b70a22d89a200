package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
)

// UnaryOp describes an elementwise function and its derivative.
type UnaryOp[E tensor.Float] interface {
	// Name identifies the op in errors and logs.
	Name() string
	// Forward computes f(x).
	Forward(x E) E
	// Derivative computes f'(x) from the forward input.
	Derivative(x E) E
}

// BinaryOp describes an elementwise function of two operands and its partial
// derivatives.
type BinaryOp[E tensor.Float] interface {
	Name() string
	Forward(x, y E) E
	// DerivX computes ∂f/∂x at (x, y).
	DerivX(x, y E) E
	// DerivY computes ∂f/∂y at (x, y).
	DerivY(x, y E) E
}

// ApplyUnary evaluates op elementwise over x. The output has a fresh ID and
// takes x's tape; if x is traced, a backward closure capturing x is recorded.
func ApplyUnary[E tensor.Float](op UnaryOp[E], x *Tensor[E]) (*Tensor[E], error) {
	if err := x.tape.usable(); err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	in := x.raw
	b := in.Backend()
	dims := in.Shape().Sizes()

	out, err := tensor.New(b, in.Shape())
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	dst, err := out.Writable()
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	b.Map(dst, in.Buffer(), dims, in.Strides(), op.Forward)

	tape := x.takeTape()
	if tape == nil {
		return Leaf(out), nil
	}
	if x.wantsGrad() {
		outID, outStrides := out.ID(), out.Strides()
		saved := in.Snapshot()
		tape.Record(func(g *Gradients[E]) error {
			defer saved.Release()
			gy, ok := g.lookup(outID)
			if !ok {
				return nil
			}
			contrib := make([]E, len(gy.Data))
			b.Zip(contrib, saved.Buffer(), gy.Data, dims, saved.Strides(), outStrides, func(xv, gv E) E {
				return op.Derivative(xv) * gv
			})
			return g.Accumulate(saved.ID(), saved.Shape(), contrib)
		})
	}
	return &Tensor[E]{raw: out, tape: tape}, nil
}

// ApplyBinary evaluates op elementwise over two tensors of equal shape. Shapes
// that differ must be broadcast explicitly first. The operands' tapes are
// merged into the output's tape. On error both operands keep their tapes.
func ApplyBinary[E tensor.Float](op BinaryOp[E], x, y *Tensor[E]) (*Tensor[E], error) {
	xr, yr := x.raw, y.raw
	if err := shape.CheckBroadcast(xr.Shape(), yr.Shape(), nil); err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	// The same handle on both sides contributes its tape once.
	var yTape *Tape[E]
	if x != y {
		yTape = y.tape
	}
	if err := checkMerge(x.tape, yTape); err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	b := xr.Backend()
	dims := xr.Shape().Sizes()

	out, err := tensor.New(b, unify(xr.Shape(), yr.Shape()))
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	dst, err := out.Writable()
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	b.Zip(dst, xr.Buffer(), yr.Buffer(), dims, xr.Strides(), yr.Strides(), op.Forward)

	tape, err := Merge(x.takeTape(), y.takeTape())
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	if tape == nil {
		return Leaf(out), nil
	}
	gradX, gradY := x.wantsGrad(), y.wantsGrad()
	if gradX || gradY {
		outID, outStrides := out.ID(), out.Strides()
		xs, ys := xr.Snapshot(), yr.Snapshot()
		tape.Record(func(g *Gradients[E]) error {
			defer xs.Release()
			defer ys.Release()
			gz, ok := g.lookup(outID)
			if !ok {
				return nil
			}
			partial := make([]E, len(gz.Data))
			if gradX {
				b.Zip(partial, xs.Buffer(), ys.Buffer(), dims, xs.Strides(), ys.Strides(), op.DerivX)
				b.Zip(partial, partial, gz.Data, dims, outStrides, outStrides, mul[E])
				if err := g.Accumulate(xs.ID(), xs.Shape(), partial); err != nil {
					return err
				}
			}
			if gradY {
				b.Zip(partial, xs.Buffer(), ys.Buffer(), dims, xs.Strides(), ys.Strides(), op.DerivY)
				b.Zip(partial, partial, gz.Data, dims, outStrides, outStrides, mul[E])
				if err := g.Accumulate(ys.ID(), ys.Shape(), partial); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return &Tensor[E]{raw: out, tape: tape}, nil
}

// unify returns a's sizes, static wherever either side is static.
func unify(a, b shape.Shape) shape.Shape {
	s := a.Clone()
	for i := range s {
		s[i].Static = a[i].Static || b[i].Static
	}
	return s
}

func mul[E tensor.Float](x, y E) E { return x * y }
