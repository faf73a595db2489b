// Package variable implements Variable, a backing tensor with named
// dimensions and attributes, and its dimension-aware indexing.
package variable

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/born-ml/warray/internal/arrowtensor"
	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
)

// Adapters resolves the index adapter for a variable's data. Dense and
// arrow tensors are registered.
var Adapters = newAdapters()

func newAdapters() *indexing.Registry {
	reg := indexing.NewRegistry()
	arrowtensor.Register(reg)
	return reg
}

// Variable is a tensor whose axes are labeled with dimension names.
//
// The number of dimension names always equals the rank of the data.
// Duplicate names are accepted but every lookup by name rejects them.
type Variable struct {
	dims  []string
	data  tensor.Tensor
	attrs map[string]any
}

var _ dims.Labeled = (*Variable)(nil)

// New creates a Variable. dims must have one non-empty name per axis of
// data. attrs is copied.
func New(dimNames []string, data tensor.Tensor, attrs map[string]any) (*Variable, error) {
	if data == nil {
		return nil, errors.Wrap(ErrUnsupportedData, "nil data")
	}
	if err := checkDims(dimNames, tensor.NDim(data)); err != nil {
		return nil, err
	}
	v := &Variable{dims: slices.Clone(dimNames), data: data}
	if len(attrs) > 0 {
		v.attrs = maps.Clone(attrs)
	}
	return v, nil
}

func checkDims(names []string, ndim int) error {
	if len(names) != ndim {
		return errors.Wrapf(ErrDimsMismatch,
			"dimensions %v must have the same length as the number of data dimensions, ndim=%d", names, ndim)
	}
	for i, d := range names {
		if d == "" {
			return errors.Wrapf(ErrInvalidDim, "dimension %d has an empty name", i)
		}
	}
	return nil
}

// Dims returns a copy of the dimension names.
func (v *Variable) Dims() []string {
	return slices.Clone(v.dims)
}

// SetDims relabels the dimensions in place. There must be one name per
// axis.
func (v *Variable) SetDims(names ...string) error {
	if err := checkDims(names, v.NDim()); err != nil {
		return err
	}
	v.dims = slices.Clone(names)
	return nil
}

// Data returns the backing tensor.
func (v *Variable) Data() tensor.Tensor {
	return v.data
}

// SetData replaces the backing tensor. The replacement must have exactly
// the current shape; on failure the variable is unchanged.
func (v *Variable) SetData(data any) error {
	t, err := AsCompatibleData(data)
	if err != nil {
		return err
	}
	if !t.Shape().Equal(v.Shape()) {
		return errors.Wrapf(ErrShapeMismatch,
			"replacement data has shape %s; Variable has shape %s", t.Shape(), v.Shape())
	}
	v.data = t
	return nil
}

// Attrs returns a copy of the attributes, or nil.
func (v *Variable) Attrs() map[string]any {
	return maps.Clone(v.attrs)
}

// Shape returns the shape of the data.
func (v *Variable) Shape() tensor.Shape {
	return v.data.Shape()
}

// NDim returns the number of dimensions.
func (v *Variable) NDim() int {
	return tensor.NDim(v)
}

// Size returns the number of elements.
func (v *Variable) Size() int {
	return tensor.Size(v)
}

// Len returns the length of the first dimension.
func (v *Variable) Len() (int, error) {
	return tensor.Len(v)
}

// DType returns the element type of the data.
func (v *Variable) DType() tensor.DataType {
	return v.data.DType()
}

// NBytes returns the memory used by the data's elements.
func (v *Variable) NBytes() int {
	if b, ok := v.data.(interface{ ByteSize() int }); ok {
		return b.ByteSize()
	}
	return v.Size() * v.DType().Size()
}

// Sizes returns the dimension lengths in axis order.
func (v *Variable) Sizes() dims.Sizes {
	return dims.SizesOf(v)
}

// AxisNum returns the axis number of dim.
func (v *Variable) AxisNum(dim string) (int, error) {
	return dims.AxisNum(v.dims, dim)
}

// AxisNums returns the axis numbers of several dimensions.
func (v *Variable) AxisNums(names ...string) ([]int, error) {
	return dims.AxisNums(v.dims, names...)
}

// Values returns a contiguous copy of the data. Dense data types come back
// as a *tensor.RawTensor; strings stay in their arrow backend.
func (v *Variable) Values() (tensor.Tensor, error) {
	return tensor.Copy(v.data)
}

// Iter iterates over the first dimension. Iterating a 0-d variable yields
// a single tensor.ErrUnsized error; a failed selection yields its error
// and ends the sequence.
func (v *Variable) Iter() iter.Seq2[*Variable, error] {
	return func(yield func(*Variable, error) bool) {
		n, err := v.Len()
		if err != nil {
			yield(nil, errors.Wrap(err, "iteration over a 0-d array"))
			return
		}
		for i := range n {
			item, err := v.Index([]any{i})
			if err != nil {
				yield(nil, errors.Wrapf(err, "item %d", i))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func (v *Variable) String() string {
	return fmt.Sprintf("<Variable (%s) %s>", strings.Join(v.dims, ", "), v.DType())
}

type replaceOption func(*Variable)

func withDims(d []string) replaceOption {
	return func(v *Variable) { v.dims = d }
}

func withData(t tensor.Tensor) replaceOption {
	return func(v *Variable) { v.data = t }
}

// replace returns a new Variable with the given fields replaced and every
// other field copied from v.
func (v *Variable) replace(opts ...replaceOption) (*Variable, error) {
	out := &Variable{dims: v.dims, data: v.data, attrs: v.attrs}
	for _, opt := range opts {
		opt(out)
	}
	return New(out.dims, out.data, out.attrs)
}
