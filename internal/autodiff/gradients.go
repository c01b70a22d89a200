package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/born-ml/gradtape/internal/uid"
)

// Gradient is the accumulated gradient of one tensor, laid out contiguously
// in the tensor's shape.
type Gradient[E tensor.Float] struct {
	Shape shape.Shape
	Data  []E
}

// Gradients maps tensor IDs to their gradients. Entries are created zeroed on
// first write and every later write adds into them. One store belongs to one
// backward pass and is not safe for concurrent use.
type Gradients[E tensor.Float] struct {
	entries map[uid.ID]*Gradient[E]
}

// NewGradients creates an empty store.
func NewGradients[E tensor.Float]() *Gradients[E] {
	return &Gradients[E]{entries: make(map[uid.ID]*Gradient[E])}
}

// GetOrInit returns the mutable gradient buffer for id, allocating a zeroed
// one of shape s on first access.
func (g *Gradients[E]) GetOrInit(id uid.ID, s shape.Shape) ([]E, error) {
	if e, ok := g.entries[id]; ok {
		if !e.Shape.Equal(s) {
			return nil, errors.Wrapf(ErrShapeMismatch, "gradient %s has shape %s, requested %s", id, e.Shape, s)
		}
		return e.Data, nil
	}
	e := &Gradient[E]{Shape: s.Clone(), Data: make([]E, s.NumElements())}
	g.entries[id] = e
	return e.Data, nil
}

// Accumulate adds values elementwise into the gradient for id.
func (g *Gradients[E]) Accumulate(id uid.ID, s shape.Shape, values []E) error {
	if len(values) != s.NumElements() {
		return errors.Wrapf(ErrShapeMismatch, "gradient %s: %d values for shape %s", id, len(values), s)
	}
	dst, err := g.GetOrInit(id, s)
	if err != nil {
		return err
	}
	for i, v := range values {
		dst[i] += v
	}
	return nil
}

// Read returns the gradient for id. The returned data aliases the store.
func (g *Gradients[E]) Read(id uid.ID) (Gradient[E], error) {
	e, ok := g.entries[id]
	if !ok {
		return Gradient[E]{}, errors.Wrapf(ErrMissingGradient, "tensor %s", id)
	}
	return *e, nil
}

// Of is Read keyed by a tensor's ID.
func (g *Gradients[E]) Of(t *Tensor[E]) (Gradient[E], error) {
	return g.Read(t.ID())
}

// Has reports whether id received a gradient.
func (g *Gradients[E]) Has(id uid.ID) bool {
	_, ok := g.entries[id]
	return ok
}

// Len returns the number of stored gradients.
func (g *Gradients[E]) Len() int {
	return len(g.entries)
}

// lookup returns the stored gradient for id without failing.
func (g *Gradients[E]) lookup(id uid.ID) (*Gradient[E], bool) {
	e, ok := g.entries[id]
	return e, ok
}
