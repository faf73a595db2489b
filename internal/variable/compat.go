package variable

import (
	"maps"
	"slices"

	"github.com/born-ml/warray/internal/arrowtensor"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
)

// Spec describes a variable by its parts: dimension names, data accepted
// by AsCompatibleData and optional attributes.
type Spec struct {
	Dims  []string
	Data  any
	Attrs map[string]any
}

func (s Spec) build() (*Variable, error) {
	data, err := AsCompatibleData(s.Data)
	if err != nil {
		return nil, err
	}
	return New(s.Dims, data, s.Attrs)
}

// AsVariable converts obj into a Variable.
//
//   - *Variable: a shallow copy sharing the data.
//   - Spec: a new Variable from its parts.
//   - anything else: 1-D data accepted by AsCompatibleData, labeled with a
//     single dimension called name. name must be non-empty.
func AsVariable(obj any, name string) (*Variable, error) {
	switch obj := obj.(type) {
	case *Variable:
		return &Variable{dims: slices.Clone(obj.dims), data: obj.data, attrs: maps.Clone(obj.attrs)}, nil
	case Spec:
		v, err := obj.build()
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q: could not convert Spec{Dims: %v} to Variable", name, obj.Dims)
		}
		return v, nil
	}

	if name == "" {
		return nil, errors.Wrapf(ErrNoDims,
			"unable to convert %T into a variable without an explicit list of dimensions", obj)
	}
	data, err := AsCompatibleData(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "variable %q", name)
	}
	if n := tensor.NDim(data); n != 1 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrNoDims, "cannot set variable %q with %d-dimensional data without explicit dimension names", name, n),
			"pass a Spec{Dims, Data} instead")
	}
	return New([]string{name}, data, nil)
}

// AsCompatibleData converts data into a backing tensor.
//
// Tensors pass through and labeled arrays yield their data. Go slices of
// numbers and bools become dense 1-D tensors, [][]T becomes a dense 2-D
// tensor, []string becomes an arrow tensor and Go scalars become 0-d
// tensors. A []any is typed by its elements: all integers, all numbers,
// all strings or all bools.
func AsCompatibleData(data any) (tensor.Tensor, error) {
	switch d := data.(type) {
	case nil:
		return nil, errors.Wrap(ErrUnsupportedData, "nil data")
	case tensor.Tensor:
		return d, nil
	case Holder:
		return d.Variable().data, nil
	case *Variable:
		return d.data, nil

	case []float64:
		return vector(d)
	case []float32:
		return vector(d)
	case []int64:
		return vector(d)
	case []int32:
		return vector(d)
	case []uint8:
		return vector(d)
	case []bool:
		return vector(d)
	case []int:
		return vector(widen(d))
	case []string:
		return arrowtensor.FromStrings(d), nil
	case []any:
		return fromAny(d)

	case [][]float64:
		return matrix(d)
	case [][]int64:
		return matrix(d)
	case [][]int:
		rows := make([][]int64, len(d))
		for i, r := range d {
			rows[i] = widen(r)
		}
		return matrix(rows)

	case float64:
		return tensor.Scalar(d), nil
	case float32:
		return tensor.Scalar(d), nil
	case bool:
		return tensor.Scalar(d), nil
	case string:
		return arrowtensor.StringScalar(d), nil
	}
	if i, ok := tensor.ToInt64(data); ok {
		return tensor.Scalar(i), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedData, "cannot convert %T to a tensor", data)
}

func vector[T tensor.DType](d []T) (tensor.Tensor, error) {
	return tensor.FromSlice(d, tensor.Shape{len(d)})
}

func matrix[T tensor.DType](rows [][]T) (tensor.Tensor, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	flat := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, errors.Wrapf(ErrUnsupportedData,
				"ragged rows: row %d has %d elements, row 0 has %d", i, len(r), cols)
		}
		flat = append(flat, r...)
	}
	return tensor.FromSlice(flat, tensor.Shape{len(rows), cols})
}

func widen(d []int) []int64 {
	out := make([]int64, len(d))
	for i, v := range d {
		out[i] = int64(v)
	}
	return out
}

func fromAny(d []any) (tensor.Tensor, error) {
	ints := make([]int64, 0, len(d))
	floats := make([]float64, 0, len(d))
	strs := make([]string, 0, len(d))
	bools := make([]bool, 0, len(d))
	for _, v := range d {
		switch v := v.(type) {
		case string:
			strs = append(strs, v)
			continue
		case bool:
			bools = append(bools, v)
			continue
		case float64:
			floats = append(floats, v)
			continue
		case float32:
			floats = append(floats, float64(v))
			continue
		}
		i, ok := tensor.ToInt64(v)
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedData, "cannot convert element %v (%T) to a tensor", v, v)
		}
		ints = append(ints, i)
		floats = append(floats, float64(i))
	}

	switch n := len(d); {
	case n == 0:
		return vector(floats)
	case len(strs) == n:
		return arrowtensor.FromStrings(strs), nil
	case len(bools) == n:
		return vector(bools)
	case len(ints) == n:
		return vector(ints)
	case len(floats) == n:
		return vector(floats)
	}
	return nil, errors.Wrap(ErrUnsupportedData, "mixed element types")
}
