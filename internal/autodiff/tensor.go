package autodiff

import (
	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

// Tensor is a tensor handle that may carry a tape.
//
// Operations move the tape from their inputs to their output, so after
// y := op(x) the handle x is no longer traced. Several handles may point to
// the same storage and ID; gradients are keyed by ID, so every traced use of
// that ID contributes to one accumulated gradient.
type Tensor[E tensor.Float] struct {
	raw      *tensor.Raw[E]
	tape     *Tape[E]
	detached bool
}

// Leaf wraps a raw tensor without a tape.
func Leaf[E tensor.Float](raw *tensor.Raw[E]) *Tensor[E] {
	return &Tensor[E]{raw: raw}
}

// FromSlice creates a leaf tensor holding a copy of data.
func FromSlice[E tensor.Float](b tensor.Backend[E], data []E, s shape.Shape) (*Tensor[E], error) {
	raw, err := tensor.FromSlice(b, data, s)
	if err != nil {
		return nil, err
	}
	return Leaf(raw), nil
}

// Zeros creates a zero-filled leaf tensor.
func Zeros[E tensor.Float](b tensor.Backend[E], s shape.Shape) (*Tensor[E], error) {
	raw, err := tensor.New(b, s)
	if err != nil {
		return nil, err
	}
	return Leaf(raw), nil
}

// Ones creates a leaf tensor filled with ones.
func Ones[E tensor.Float](b tensor.Backend[E], s shape.Shape) (*Tensor[E], error) {
	return Full(b, s, 1)
}

// Full creates a leaf tensor filled with v.
func Full[E tensor.Float](b tensor.Backend[E], s shape.Shape, v E) (*Tensor[E], error) {
	raw, err := tensor.Full(b, s, v)
	if err != nil {
		return nil, err
	}
	return Leaf(raw), nil
}

// Raw returns the underlying strided handle.
func (t *Tensor[E]) Raw() *tensor.Raw[E] { return t.raw }

// ID returns the identifier keying this tensor's gradient.
func (t *Tensor[E]) ID() uid.ID { return t.raw.ID() }

// Shape returns the tensor's shape.
func (t *Tensor[E]) Shape() shape.Shape { return t.raw.Shape() }

// Backend returns the backend that allocated the tensor.
func (t *Tensor[E]) Backend() tensor.Backend[E] { return t.raw.Backend() }

// Data returns the elements in row-major order.
func (t *Tensor[E]) Data() []E { return t.raw.Data() }

// Item returns the value of a scalar tensor.
func (t *Tensor[E]) Item() (E, error) { return t.raw.Item() }

// Traced reports whether the handle currently carries a tape.
func (t *Tensor[E]) Traced() bool { return t.tape != nil }

// Trace returns a handle to the same storage and ID carrying a fresh tape.
// The receiver is unchanged. Tracing a tensor several times and joining the
// results later accumulates every path's contribution into one gradient.
func (t *Tensor[E]) Trace() *Tensor[E] {
	return &Tensor[E]{raw: t.raw, tape: NewTape[E]()}
}

// Split detaches the tape from the handle. The returned tensor can be used
// any number of times; only the holder of the tape extends the history.
func (t *Tensor[E]) Split() (*Tensor[E], *Tape[E]) {
	tape := t.tape
	t.tape = nil
	return &Tensor[E]{raw: t.raw, detached: t.detached}, tape
}

// PutTape returns a handle to the same tensor carrying tape.
func (t *Tensor[E]) PutTape(tape *Tape[E]) *Tensor[E] {
	return &Tensor[E]{raw: t.raw, tape: tape, detached: t.detached}
}

// Detach returns a handle with no tape that never receives a gradient, even
// when combined with traced tensors. The receiver keeps its tape.
func (t *Tensor[E]) Detach() *Tensor[E] {
	return &Tensor[E]{raw: t.raw, detached: true}
}

// takeTape moves the tape out of the handle.
func (t *Tensor[E]) takeTape() *Tape[E] {
	tape := t.tape
	t.tape = nil
	return tape
}

// wantsGrad reports whether a recorded operation should write a gradient for t.
func (t *Tensor[E]) wantsGrad() bool {
	return !t.detached
}
