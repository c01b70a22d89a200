package tensor

import (
	"github.com/born-ml/gradtape/internal/shape"
	"github.com/born-ml/gradtape/internal/uid"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Backend executes elementwise and reduction kernels over raw buffers.
//
// All kernels iterate the index space given by dims in row-major order. Inputs
// are read through their strides, so broadcast views (zero strides) are read
// without copying. Outputs are always contiguous.
//
// The backend also owns the identifier allocator used for every tensor it
// creates, so tensors of one computation share a single ID space.
type Backend[E Float] interface {
	// Name returns the backend name.
	Name() string

	// Device returns the compute device.
	Device() Device

	// IDs returns the allocator used to identify new storages.
	IDs() *uid.Allocator

	// Map computes dst[i] = fn(src[offset(i)]).
	Map(dst, src []E, dims, srcStrides []int, fn func(E) E)

	// Zip computes dst[i] = fn(a[offsetA(i)], b[offsetB(i)]).
	Zip(dst, a, b []E, dims, aStrides, bStrides []int, fn func(x, y E) E)

	// SumAxes sums src along axes into dst, which is laid out contiguously
	// in the reduced shape.
	SumAxes(dst, src []E, dims, srcStrides []int, axes shape.Axes)
}
