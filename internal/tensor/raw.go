package tensor

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/uid"
)

// ErrReadOnlyView is returned when writing through a handle whose storage is
// laid out as a broadcast view.
var ErrReadOnlyView = errors.New("tensor is a read-only view")

// Raw is a strided handle to a shared storage buffer.
//
// Several handles may share one storage: broadcast views read it through
// rewritten strides and never write to it. Writes go through Writable, which
// copies the buffer first when it is shared.
type Raw[E Float] struct {
	id      uid.ID
	shape   shape.Shape
	strides []int
	storage *storage[E]
	backend Backend[E]
	// released is set once this handle dropped its storage reference.
	released bool
}

// New allocates a zero-filled contiguous tensor with a fresh ID.
func New[E Float](b Backend[E], s shape.Shape) (*Raw[E], error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	return &Raw[E]{
		id:      b.IDs().Next(),
		shape:   s.Clone(),
		strides: s.Strides(),
		storage: newStorage[E](s.NumElements()),
		backend: b,
	}, nil
}

// FromSlice creates a contiguous tensor holding a copy of data.
func FromSlice[E Float](b Backend[E], data []E, s shape.Shape) (*Raw[E], error) {
	if s.NumElements() != len(data) {
		return nil, errors.Errorf("shape %s requires %d elements, but got %d", s, s.NumElements(), len(data))
	}
	r, err := New(b, s)
	if err != nil {
		return nil, err
	}
	copy(r.storage.data, data)
	return r, nil
}

// Full creates a contiguous tensor with every element set to v.
func Full[E Float](b Backend[E], s shape.Shape, v E) (*Raw[E], error) {
	r, err := New(b, s)
	if err != nil {
		return nil, err
	}
	for i := range r.storage.data {
		r.storage.data[i] = v
	}
	return r, nil
}

// ID returns the identifier keying this tensor's gradient.
func (r *Raw[E]) ID() uid.ID { return r.id }

// Shape returns the tensor's shape.
func (r *Raw[E]) Shape() shape.Shape { return r.shape }

// Strides returns the memory strides, one per axis.
func (r *Raw[E]) Strides() []int { return r.strides }

// Backend returns the backend that allocated the tensor.
func (r *Raw[E]) Backend() Backend[E] { return r.backend }

// DType returns the runtime data type.
func (r *Raw[E]) DType() DataType { return DataTypeOf[E]() }

// NumElements returns the number of logical elements.
func (r *Raw[E]) NumElements() int { return r.shape.NumElements() }

// IsView reports whether any axis is read with stride 0.
func (r *Raw[E]) IsView() bool {
	for i, st := range r.strides {
		if st == 0 && r.shape[i].Size > 1 {
			return true
		}
	}
	return false
}

// IsContiguous reports whether the strides are row-major for the shape.
func (r *Raw[E]) IsContiguous() bool {
	want := r.shape.Strides()
	for i := range want {
		if r.shape[i].Size > 1 && want[i] != r.strides[i] {
			return false
		}
	}
	return true
}

// Buffer exposes the underlying storage for kernels. It must be read through
// Strides and must not be written.
func (r *Raw[E]) Buffer() []E { return r.storage.data }

// Data returns the elements in row-major order as a new slice.
func (r *Raw[E]) Data() []E {
	out := make([]E, r.NumElements())
	r.backend.Map(out, r.storage.data, r.shape.Sizes(), r.strides, identity[E])
	return out
}

// At returns the element at the given multi-index.
func (r *Raw[E]) At(idx ...int) (E, error) {
	if len(idx) != r.shape.Rank() {
		return 0, errors.Errorf("index %v has %d axes, tensor has rank %d", idx, len(idx), r.shape.Rank())
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= r.shape[i].Size {
			return 0, errors.Errorf("index %v out of bounds for shape %s", idx, r.shape)
		}
		off += v * r.strides[i]
	}
	return r.storage.data[off], nil
}

// Item returns the single element of a rank-0 tensor.
func (r *Raw[E]) Item() (E, error) {
	if !r.shape.IsScalar() {
		return 0, errors.Errorf("item requires a scalar, got shape %s", r.shape)
	}
	return r.storage.data[0], nil
}

// Writable returns the contiguous buffer for in-place writes. A shared
// storage is copied first so that views of the old contents are unaffected.
func (r *Raw[E]) Writable() ([]E, error) {
	if r.IsView() || !r.IsContiguous() {
		return nil, errors.Wrapf(ErrReadOnlyView, "tensor %s with strides %v", r.id, r.strides)
	}
	// A released handle no longer owns its storage and writes to a copy.
	if r.released || r.storage.shared() {
		fresh := newStorage[E](len(r.storage.data))
		copy(fresh.data, r.storage.data)
		if !r.released {
			r.storage.release()
		}
		r.storage = fresh
		r.released = false
	}
	return r.storage.data, nil
}

// View returns a handle with a new ID sharing this tensor's storage, read
// through the given shape and strides.
func (r *Raw[E]) View(s shape.Shape, strides []int) *Raw[E] {
	r.storage.addRef()
	return &Raw[E]{
		id:      r.backend.IDs().Next(),
		shape:   s.Clone(),
		strides: append([]int(nil), strides...),
		storage: r.storage,
		backend: r.backend,
	}
}

// Snapshot returns a handle with the same ID pinning the current storage.
// Later writes through r copy the buffer first, so the snapshot keeps seeing
// the values it was taken with until it is released.
func (r *Raw[E]) Snapshot() *Raw[E] {
	r.storage.addRef()
	return &Raw[E]{
		id:      r.id,
		shape:   r.shape,
		strides: r.strides,
		storage: r.storage,
		backend: r.backend,
	}
}

// Release drops this handle's reference to the storage. Only the first call
// on a handle has an effect. The handle may still be read afterwards, but it
// no longer keeps the values it was created with from being overwritten.
func (r *Raw[E]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.storage.release()
}

func identity[E Float](x E) E { return x }
