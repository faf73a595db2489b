package tensor

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// DenseBackend is the backend name reported by RawTensor.
const DenseBackend = "dense"

// tensorBuffer is a reference-counted shared buffer.
// Views produced by indexing share their parent's buffer.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone and views).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// RawTensor is the dense, strided backing tensor.
//
// A RawTensor either owns its buffer (created by NewRaw and friends) or is a
// view onto another tensor's buffer (created by Index). Views inherit the
// writeable flag of their parent; ReadOnly produces a view that can never be
// written through.
type RawTensor struct {
	buffer    *tensorBuffer // Shared reference-counted buffer
	shape     Shape         // Tensor dimensions
	stride    []int         // Strides in elements, may be negative for reversed views
	offset    int           // Element offset of index (0, ..., 0)
	dtype     DataType      // Runtime type information
	owns      bool          // Whether this tensor allocated its buffer
	writeable bool
}

var _ Indexable = (*RawTensor)(nil)

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is zero-initialised.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if !dtype.Dense() {
		return nil, errors.Wrapf(ErrUnsupportedDType, "dense tensors cannot hold %s", dtype)
	}

	return &RawTensor{
		buffer:    newTensorBuffer(shape.NumElements() * dtype.Size()),
		shape:     shape.Clone(),
		stride:    shape.ComputeStrides(),
		dtype:     dtype,
		owns:      true,
		writeable: true,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Backend returns DenseBackend.
func (r *RawTensor) Backend() string {
	return DenseBackend
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the memory covered by the tensor's elements in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// OwnsData reports whether the tensor allocated its own buffer.
func (r *RawTensor) OwnsData() bool {
	return r.owns
}

// Writeable reports whether SetIndex may write through this tensor.
func (r *RawTensor) Writeable() bool {
	return r.writeable
}

// Clone creates a shallow copy of the RawTensor sharing its buffer.
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer:    r.buffer,
		shape:     r.shape.Clone(),
		stride:    append([]int(nil), r.stride...),
		offset:    r.offset,
		dtype:     r.dtype,
		owns:      r.owns,
		writeable: r.writeable,
	}
}

// ReadOnly returns a non-owning view of r that rejects writes.
func (r *RawTensor) ReadOnly() *RawTensor {
	v := r.Clone()
	v.owns = false
	v.writeable = false
	return v
}

// Release decrements the buffer's reference count and frees it at zero.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// Contiguous returns a row-major copy of r that owns its buffer.
func (r *RawTensor) Contiguous() *RawTensor {
	out, err := NewRaw(r.shape, r.dtype)
	if err != nil {
		// r was built from a valid shape and a dense dtype.
		panic(err)
	}
	switch r.dtype {
	case Float32:
		gather(view[float32](out.buffer.data, 4), view[float32](r.buffer.data, 4), r)
	case Float64:
		gather(view[float64](out.buffer.data, 8), view[float64](r.buffer.data, 8), r)
	case Int32:
		gather(view[int32](out.buffer.data, 4), view[int32](r.buffer.data, 4), r)
	case Int64:
		gather(view[int64](out.buffer.data, 8), view[int64](r.buffer.data, 8), r)
	case Uint8:
		gather(out.buffer.data, r.buffer.data, r)
	case Bool:
		gather(view[bool](out.buffer.data, 1), view[bool](r.buffer.data, 1), r)
	}
	return out
}

// At returns the element at the given indices.
func (r *RawTensor) At(indices ...int) (any, error) {
	pos, err := r.position(indices)
	if err != nil {
		return nil, err
	}
	return r.load(pos), nil
}

// position converts a multi-index into a buffer element position.
func (r *RawTensor) position(indices []int) (int, error) {
	if len(indices) != len(r.shape) {
		return 0, errors.Wrapf(ErrIndexCount, "expected %d indices, got %d", len(r.shape), len(indices))
	}
	pos := r.offset
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			return 0, errors.Wrapf(ErrIndexOutOfRange,
				"index %d is out of bounds for axis %d with size %d", idx, i, r.shape[i])
		}
		pos += idx * r.stride[i]
	}
	return pos, nil
}

// load reads the element at buffer position pos.
func (r *RawTensor) load(pos int) any {
	data := r.buffer.data
	switch r.dtype {
	case Float32:
		return view[float32](data, 4)[pos]
	case Float64:
		return view[float64](data, 8)[pos]
	case Int32:
		return view[int32](data, 4)[pos]
	case Int64:
		return view[int64](data, 8)[pos]
	case Uint8:
		return data[pos]
	case Bool:
		return view[bool](data, 1)[pos]
	default:
		panic("unknown data type")
	}
}

// each calls fn for every element of r in row-major order with the
// element's row-major ordinal and its buffer position.
func (r *RawTensor) each(fn func(i, pos int)) {
	n := r.shape.NumElements()
	idx := make([]int, len(r.shape))
	pos := r.offset
	for i := 0; i < n; i++ {
		fn(i, pos)
		for ax := len(idx) - 1; ax >= 0; ax-- {
			idx[ax]++
			pos += r.stride[ax]
			if idx[ax] < r.shape[ax] {
				break
			}
			pos -= idx[ax] * r.stride[ax]
			idx[ax] = 0
		}
	}
}

// gather copies the elements of r, read from src, into dst in row-major order.
func gather[T any](dst, src []T, r *RawTensor) {
	r.each(func(i, pos int) {
		dst[i] = src[pos]
	})
}

// view reinterprets a byte buffer as a []T of elements of the given size.
func view[T any](data []byte, size int) []T {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer size
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/size)
}
