// Package tensor provides tensor storage, strided handles and the kernel
// contract that compute backends implement.
package tensor

import "unsafe"

// Float is the constraint for element types that can be differentiated.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of E from its width.
func DataTypeOf[E Float]() DataType {
	var zero E
	if unsafe.Sizeof(zero) == 4 {
		return Float32
	}
	return Float64
}
