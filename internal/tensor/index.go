package tensor

import (
	"github.com/cockroachdb/errors"
)

// Index applies a native positional index to r.
//
// Picks drop their axis, spans keep it as a strided view, Rest keeps every
// axis the other selectors do not consume, and any axes left over at the end
// are kept as well. The result is a *RawTensor view sharing r's buffer,
// except when every axis is consumed by picks and no Rest is present: then
// the bare element is returned.
func (r *RawTensor) Index(sel ...Selector) (any, error) {
	v, scalar, err := r.view(sel)
	if err != nil {
		return nil, err
	}
	if scalar {
		out := v.load(v.offset)
		v.Release()
		return out, nil
	}
	return v, nil
}

// view resolves sel into a strided view of r. scalar reports that every axis
// was picked without a Rest marker.
func (r *RawTensor) view(sel []Selector) (*RawTensor, bool, error) {
	ndim := len(r.shape)

	explicit := 0
	rests := 0
	for _, s := range sel {
		if _, ok := s.(Rest); ok {
			rests++
			continue
		}
		explicit++
	}
	if rests > 1 {
		return nil, false, ErrMultipleRest
	}
	if explicit > ndim {
		return nil, false, errors.Wrapf(ErrTooManySelectors,
			"tensor is %d-dimensional, but %d were indexed", ndim, explicit)
	}

	shape := make(Shape, 0, ndim)
	stride := make([]int, 0, ndim)
	offset := r.offset
	axis := 0
	picks := 0

	for _, s := range sel {
		switch s := s.(type) {
		case Pick:
			i, err := s.Resolve(axis, r.shape[axis])
			if err != nil {
				return nil, false, err
			}
			offset += i * r.stride[axis]
			axis++
			picks++
		case Span:
			start, step, length, err := s.Indices(r.shape[axis])
			if err != nil {
				return nil, false, errors.Wrapf(err, "axis %d", axis)
			}
			if length > 0 {
				offset += start * r.stride[axis]
			}
			shape = append(shape, length)
			stride = append(stride, r.stride[axis]*step)
			axis++
		case Rest:
			for n := ndim - explicit; n > 0; n-- {
				shape = append(shape, r.shape[axis])
				stride = append(stride, r.stride[axis])
				axis++
			}
		default:
			return nil, false, errors.Newf("unknown selector %T", s)
		}
	}
	for ; axis < ndim; axis++ {
		shape = append(shape, r.shape[axis])
		stride = append(stride, r.stride[axis])
	}

	r.buffer.addRef()
	v := &RawTensor{
		buffer:    r.buffer,
		shape:     shape,
		stride:    stride,
		offset:    offset,
		dtype:     r.dtype,
		owns:      false,
		writeable: r.writeable,
	}
	return v, picks == ndim && rests == 0, nil
}

// SetIndex writes value into the positions selected by sel.
//
// value is either a scalar, broadcast to every selected position, or a
// Tensor whose shape equals the selection's shape. Nothing is written unless
// the whole assignment can succeed.
func (r *RawTensor) SetIndex(value any, sel ...Selector) error {
	if !r.writeable {
		return ErrNotWriteable
	}
	dst, _, err := r.view(sel)
	if err != nil {
		return err
	}
	defer dst.Release()

	if src, ok := value.(Tensor); ok {
		if !src.Shape().Equal(dst.shape) {
			return errors.Wrapf(ErrShapeMismatch,
				"could not assign value with shape %s into selection with shape %s", src.Shape(), dst.shape)
		}
		if !canStore(r.dtype, src.DType()) {
			return errors.Wrapf(ErrInvalidConversion, "cannot store %s values in a %s tensor", src.DType(), r.dtype)
		}
		cast, err := Materialize(src)
		if err != nil {
			return err
		}
		if cast.dtype != r.dtype {
			if cast, err = cast.convert(r.dtype); err != nil {
				return err
			}
		}
		dst.scatter(cast)
		return nil
	}

	scalar, err := convertScalar(value, r.dtype)
	if err != nil {
		return err
	}
	dst.fill(scalar)
	return nil
}

// scatter copies the contiguous tensor src into r's positions.
func (r *RawTensor) scatter(src *RawTensor) {
	switch r.dtype {
	case Float32:
		scatterInto(view[float32](r.buffer.data, 4), view[float32](src.buffer.data, 4), r)
	case Float64:
		scatterInto(view[float64](r.buffer.data, 8), view[float64](src.buffer.data, 8), r)
	case Int32:
		scatterInto(view[int32](r.buffer.data, 4), view[int32](src.buffer.data, 4), r)
	case Int64:
		scatterInto(view[int64](r.buffer.data, 8), view[int64](src.buffer.data, 8), r)
	case Uint8:
		scatterInto(r.buffer.data, src.buffer.data, r)
	case Bool:
		scatterInto(view[bool](r.buffer.data, 1), view[bool](src.buffer.data, 1), r)
	}
}

// fill stores one already-converted value into all of r's positions.
func (r *RawTensor) fill(v any) {
	switch r.dtype {
	case Float32:
		fillWith(view[float32](r.buffer.data, 4), v.(float32), r)
	case Float64:
		fillWith(view[float64](r.buffer.data, 8), v.(float64), r)
	case Int32:
		fillWith(view[int32](r.buffer.data, 4), v.(int32), r)
	case Int64:
		fillWith(view[int64](r.buffer.data, 8), v.(int64), r)
	case Uint8:
		fillWith(r.buffer.data, v.(uint8), r)
	case Bool:
		fillWith(view[bool](r.buffer.data, 1), v.(bool), r)
	}
}

func scatterInto[T any](dst, src []T, r *RawTensor) {
	r.each(func(i, pos int) {
		dst[pos] = src[i]
	})
}

func fillWith[T any](dst []T, v T, r *RawTensor) {
	r.each(func(_, pos int) {
		dst[pos] = v
	})
}
