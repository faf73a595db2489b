package tensor

import (
	"math"

	"github.com/cockroachdb/errors"
)

// FromSlice creates a dense tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"shape %s requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	copy(view[T](raw.buffer.data, dtype.Size()), data)
	return raw, nil
}

// Scalar creates a 0-dimensional tensor holding v.
func Scalar[T DType](v T) *RawTensor {
	raw, err := FromSlice([]T{v}, Shape{})
	if err != nil {
		panic(err)
	}
	return raw
}

// Values returns the elements of t in row-major order.
// T must match the tensor's data type.
func Values[T DType](t Tensor) ([]T, error) {
	var dummy T
	want := inferDataType(dummy)
	if t.DType() != want {
		return nil, errors.Wrapf(ErrDTypeMismatch, "tensor holds %s, not %s", t.DType(), want)
	}
	m, err := Materialize(t)
	if err != nil {
		return nil, err
	}
	out := make([]T, m.NumElements())
	copy(out, view[T](m.buffer.data, want.Size()))
	return out, nil
}

// Copier is implemented by tensors that can copy themselves into fresh
// storage of their own backend.
type Copier interface {
	Copy() (Tensor, error)
}

// Copy returns a contiguous copy of t that shares no storage with it.
// Dense data types are materialized into a RawTensor; any other tensor
// must implement Copier.
func Copy(t Tensor) (Tensor, error) {
	if t.DType().Dense() {
		raw, err := Materialize(t)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}
	if c, ok := t.(Copier); ok {
		return c.Copy()
	}
	return nil, errors.Wrapf(ErrUnsupportedDType, "cannot copy %s tensor of %s", t.Backend(), t.DType())
}

// Materialize returns a contiguous dense copy of t.
// Tensors whose data type a RawTensor cannot hold are rejected.
func Materialize(t Tensor) (*RawTensor, error) {
	if r, ok := t.(*RawTensor); ok {
		return r.Contiguous(), nil
	}
	out, err := NewRaw(t.Shape(), t.DType())
	if err != nil {
		return nil, err
	}
	err = forEachIndex(out.shape, func(i int, idx []int) error {
		v, err := t.At(idx...)
		if err != nil {
			return err
		}
		c, err := convertScalar(v, out.dtype)
		if err != nil {
			return err
		}
		out.storeAt(i, c)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "materializing %s tensor", t.Backend())
	}
	return out, nil
}

// convert returns a contiguous copy of r with data type dt.
func (r *RawTensor) convert(dt DataType) (*RawTensor, error) {
	out, err := NewRaw(r.shape, dt)
	if err != nil {
		return nil, err
	}
	var convErr error
	r.each(func(i, pos int) {
		if convErr != nil {
			return
		}
		c, err := convertScalar(r.load(pos), dt)
		if err != nil {
			convErr = err
			return
		}
		out.storeAt(i, c)
	})
	if convErr != nil {
		return nil, convErr
	}
	return out, nil
}

// storeAt writes an already-converted value at buffer position pos.
func (r *RawTensor) storeAt(pos int, v any) {
	data := r.buffer.data
	switch r.dtype {
	case Float32:
		view[float32](data, 4)[pos] = v.(float32)
	case Float64:
		view[float64](data, 8)[pos] = v.(float64)
	case Int32:
		view[int32](data, 4)[pos] = v.(int32)
	case Int64:
		view[int64](data, 8)[pos] = v.(int64)
	case Uint8:
		data[pos] = v.(uint8)
	case Bool:
		view[bool](data, 1)[pos] = v.(bool)
	}
}

// canStore reports whether every value of type src converts into dst.
func canStore(dst, src DataType) bool {
	switch {
	case dst == Bool:
		return src == Bool
	case dst.IsInteger():
		return src.IsInteger()
	case dst.IsFloat():
		return src.IsInteger() || src.IsFloat()
	}
	return false
}

// convertScalar converts a Go value into the element type of dt.
func convertScalar(v any, dt DataType) (any, error) {
	switch dt {
	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case Float32, Float64:
		if f, ok := toFloat64(v); ok {
			if dt == Float32 {
				return float32(f), nil
			}
			return f, nil
		}
	case Int32, Int64, Uint8:
		i, ok := ToInt64(v)
		if !ok {
			break
		}
		switch {
		case dt == Int64:
			return i, nil
		case dt == Int32 && i >= math.MinInt32 && i <= math.MaxInt32:
			return int32(i), nil
		case dt == Uint8 && i >= 0 && i <= math.MaxUint8:
			return uint8(i), nil
		}
		return nil, errors.Wrapf(ErrInvalidConversion, "%d overflows %s", i, dt)
	}
	return nil, errors.Wrapf(ErrInvalidConversion, "cannot store %v (%T) in a %s tensor", v, v, dt)
}

// ToInt64 converts any Go integer kind to int64. Floats, bools and uint64
// values above math.MaxInt64 are rejected.
func ToInt64(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch v := v.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	if i, ok := ToInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}
