// Package arrowtensor backs labeled arrays with immutable Apache Arrow
// arrays. It is used for coordinate labels, strings in particular, which
// the dense tensor cannot hold.
package arrowtensor

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
)

// Backend is the backend name of arrow tensors.
const Backend = "arrow"

var dtypes = map[arrow.Type]tensor.DataType{
	arrow.STRING:  tensor.String,
	arrow.INT64:   tensor.Int64,
	arrow.INT32:   tensor.Int32,
	arrow.FLOAT64: tensor.Float64,
	arrow.FLOAT32: tensor.Float32,
	arrow.BOOL:    tensor.Bool,
	arrow.UINT8:   tensor.Uint8,
}

// Tensor is a 1-D tensor over an arrow.Array, or a 0-d tensor over a
// length-1 array. Arrow arrays are immutable, so every Tensor is a
// read-only view.
type Tensor struct {
	arr    arrow.Array
	scalar bool
	dtype  tensor.DataType
}

var (
	_ tensor.Indexable = (*Tensor)(nil)
	_ tensor.Copier    = (*Tensor)(nil)
)

// New wraps arr as a 1-D tensor. The tensor takes its own reference to arr.
func New(arr arrow.Array) (*Tensor, error) {
	dt, ok := dtypes[arr.DataType().ID()]
	if !ok {
		return nil, errors.Wrapf(tensor.ErrUnsupportedDType, "arrow type %s", arr.DataType())
	}
	arr.Retain()
	return &Tensor{arr: arr, dtype: dt}, nil
}

// FromStrings builds a 1-D string tensor.
func FromStrings(vals []string) *Tensor {
	b := array.NewStringBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, nil)
	return &Tensor{arr: b.NewArray(), dtype: tensor.String}
}

// StringScalar builds a 0-d string tensor.
func StringScalar(v string) *Tensor {
	t := FromStrings([]string{v})
	t.scalar = true
	return t
}

// FromInt64s builds a 1-D int64 tensor.
func FromInt64s(vals []int64) *Tensor {
	b := array.NewInt64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, nil)
	return &Tensor{arr: b.NewArray(), dtype: tensor.Int64}
}

// FromFloat64s builds a 1-D float64 tensor.
func FromFloat64s(vals []float64) *Tensor {
	b := array.NewFloat64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, nil)
	return &Tensor{arr: b.NewArray(), dtype: tensor.Float64}
}

// Register installs the arrow backend in reg.
func Register(reg *indexing.Registry) {
	reg.Register(Backend, indexing.NewNativeAdapter)
}

// Array returns the underlying array. For a 0-d tensor it has length 1.
func (t *Tensor) Array() arrow.Array {
	return t.arr
}

// Release drops the tensor's reference to its array.
func (t *Tensor) Release() {
	t.arr.Release()
}

// Shape implements tensor.Tensor.
func (t *Tensor) Shape() tensor.Shape {
	if t.scalar {
		return tensor.Shape{}
	}
	return tensor.Shape{t.arr.Len()}
}

// DType implements tensor.Tensor.
func (t *Tensor) DType() tensor.DataType {
	return t.dtype
}

// Backend implements tensor.Tensor.
func (t *Tensor) Backend() string {
	return Backend
}

// ByteSize returns the number of bytes held by the selected elements.
// Fixed-width types count their element width; strings count their
// character bytes plus one int32 offset per element. Buffers shared with
// a parent array outside the selection are not counted, nor are validity
// bitmaps.
func (t *Tensor) ByteSize() int {
	n := t.arr.Len()
	if n == 0 {
		return 0
	}
	if s, ok := t.arr.(*array.String); ok {
		offs := s.ValueOffsets()
		return int(offs[len(offs)-1]-offs[0]) + 4*n
	}
	return n * t.dtype.Size()
}

// Copy implements tensor.Copier. The copy owns fresh arrow buffers holding
// only the selected elements.
func (t *Tensor) Copy() (tensor.Tensor, error) {
	b := array.NewBuilder(memory.NewGoAllocator(), t.arr.DataType())
	defer b.Release()
	b.Reserve(t.arr.Len())
	for i := range t.arr.Len() {
		if t.arr.IsNull(i) {
			b.AppendNull()
			continue
		}
		if err := b.AppendValueFromString(t.arr.ValueStr(i)); err != nil {
			return nil, errors.Wrapf(err, "copying element %d of %s array", i, t.arr.DataType())
		}
	}
	return t.derive(b.NewArray(), t.scalar), nil
}

// Writeable is always false.
func (t *Tensor) Writeable() bool {
	return false
}

// OwnsData is always false: the memory belongs to the arrow array.
func (t *Tensor) OwnsData() bool {
	return false
}

// At implements tensor.Tensor. Null entries are returned as nil.
func (t *Tensor) At(indices ...int) (any, error) {
	ndim := len(t.Shape())
	if len(indices) != ndim {
		return nil, errors.Wrapf(tensor.ErrIndexCount, "expected %d indices, got %d", ndim, len(indices))
	}
	if t.scalar {
		return t.value(0), nil
	}
	i := indices[0]
	if i < 0 || i >= t.arr.Len() {
		return nil, errors.Wrapf(tensor.ErrIndexOutOfRange, "index %d out of range [0, %d)", i, t.arr.Len())
	}
	return t.value(i), nil
}

// Index implements tensor.Indexable with the same rules as
// tensor.RawTensor.Index. Contiguous spans are zero-copy slices; strided
// spans are concatenated into a new array.
func (t *Tensor) Index(sel ...tensor.Selector) (any, error) {
	var (
		term  tensor.Selector
		rests int
		n     int
	)
	for _, s := range sel {
		if _, ok := s.(tensor.Rest); ok {
			rests++
			continue
		}
		term = s
		n++
	}
	ndim := len(t.Shape())
	switch {
	case rests > 1:
		return nil, tensor.ErrMultipleRest
	case n > ndim:
		return nil, errors.Wrapf(tensor.ErrTooManySelectors,
			"tensor is %d-dimensional, but %d were indexed", ndim, n)
	}

	switch s := term.(type) {
	case nil:
		if t.scalar && rests == 0 {
			return t.value(0), nil
		}
		return t.derive(array.NewSlice(t.arr, 0, int64(t.arr.Len())), t.scalar), nil
	case tensor.Pick:
		i, err := s.Resolve(0, t.arr.Len())
		if err != nil {
			return nil, err
		}
		if rests == 0 {
			return t.value(i), nil
		}
		return t.derive(array.NewSlice(t.arr, int64(i), int64(i+1)), true), nil
	case tensor.Span:
		start, step, length, err := s.Indices(t.arr.Len())
		if err != nil {
			return nil, errors.Wrap(err, "axis 0")
		}
		arr, err := t.span(start, step, length)
		if err != nil {
			return nil, err
		}
		return t.derive(arr, false), nil
	default:
		return nil, errors.Newf("unknown selector %T", s)
	}
}

// SetIndex always fails: arrow arrays cannot be written.
func (t *Tensor) SetIndex(any, ...tensor.Selector) error {
	return errors.Wrap(tensor.ErrNotWriteable, "arrow arrays are immutable")
}

func (t *Tensor) span(start, step, length int) (arrow.Array, error) {
	if length == 0 {
		return array.NewSlice(t.arr, 0, 0), nil
	}
	if step == 1 {
		return array.NewSlice(t.arr, int64(start), int64(start+length)), nil
	}
	parts := make([]arrow.Array, length)
	for k := range parts {
		i := int64(start + k*step)
		parts[k] = array.NewSlice(t.arr, i, i+1)
	}
	defer func() {
		for _, p := range parts {
			p.Release()
		}
	}()
	out, err := array.Concatenate(parts, memory.NewGoAllocator())
	if err != nil {
		return nil, errors.Wrap(err, "gathering strided arrow slice")
	}
	return out, nil
}

func (t *Tensor) derive(arr arrow.Array, scalar bool) *Tensor {
	return &Tensor{arr: arr, scalar: scalar, dtype: t.dtype}
}

func (t *Tensor) value(i int) any {
	if t.arr.IsNull(i) {
		return nil
	}
	switch t.arr.DataType().ID() {
	case arrow.STRING:
		return t.arr.(*array.String).Value(i)
	case arrow.INT64:
		return t.arr.(*array.Int64).Value(i)
	case arrow.INT32:
		return t.arr.(*array.Int32).Value(i)
	case arrow.FLOAT64:
		return t.arr.(*array.Float64).Value(i)
	case arrow.FLOAT32:
		return t.arr.(*array.Float32).Value(i)
	case arrow.BOOL:
		return t.arr.(*array.Boolean).Value(i)
	case arrow.UINT8:
		return t.arr.(*array.Uint8).Value(i)
	}
	return nil
}
