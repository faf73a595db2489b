// Package dataarray implements DataArray: a Variable together with the
// coordinate variables that label its dimensions, indexed by dimension
// name.
package dataarray

import (
	"fmt"
	"iter"
	"maps"

	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/born-ml/warray/internal/variable"
	"github.com/cockroachdb/errors"
)

// DataArray is a labeled N-dimensional array.
//
// Its dimensions and shape are those of its variable. Indexing never
// changes a DataArray; it builds a new one, sharing coordinate variables
// the request does not touch.
type DataArray struct {
	variable *variable.Variable
	coords   *Coordinates
	name     string
	attrs    map[string]any
}

var (
	_ dims.Labeled    = (*DataArray)(nil)
	_ variable.Holder = (*DataArray)(nil)
)

// New builds a DataArray around data, which may be anything
// variable.AsCompatibleData accepts, including another DataArray.
func New(data any, opts ...Option) (*DataArray, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	t, err := variable.AsCompatibleData(data)
	if err != nil {
		return nil, err
	}
	coords, dimNames, err := inferCoordsAndDims(t.Shape(), o)
	if err != nil {
		return nil, err
	}
	v, err := variable.New(dimNames, t, nil)
	if err != nil {
		return nil, err
	}

	name := o.name
	if src, ok := data.(*DataArray); ok && !o.nameSet {
		name = src.name
	}
	return &DataArray{variable: v, coords: coords, name: name, attrs: maps.Clone(o.attrs)}, nil
}

// Variable returns the underlying variable.
func (da *DataArray) Variable() *variable.Variable {
	return da.variable
}

// Coords returns the coordinates.
func (da *DataArray) Coords() *Coordinates {
	return da.coords
}

// Coord returns the coordinate called name.
func (da *DataArray) Coord(name string) (*variable.Variable, bool) {
	return da.coords.Get(name)
}

// Name returns the array's name, or "".
func (da *DataArray) Name() string {
	return da.name
}

// Attrs returns a copy of the attributes.
func (da *DataArray) Attrs() map[string]any {
	return maps.Clone(da.attrs)
}

// Dims returns a copy of the dimension names.
func (da *DataArray) Dims() []string {
	return da.variable.Dims()
}

// SetDims always fails: relabeling would desynchronise the coordinates.
func (da *DataArray) SetDims(...string) error {
	return errors.WithHint(ErrDimsReadOnly, "use Rename or SwapDims instead")
}

// Data returns the backing tensor.
func (da *DataArray) Data() tensor.Tensor {
	return da.variable.Data()
}

// SetData replaces the backing tensor with one of the same shape.
func (da *DataArray) SetData(data any) error {
	return da.variable.SetData(data)
}

// Values returns a contiguous copy of the data. See Variable.Values.
func (da *DataArray) Values() (tensor.Tensor, error) {
	return da.variable.Values()
}

// Shape returns the shape of the data.
func (da *DataArray) Shape() tensor.Shape {
	return da.variable.Shape()
}

// NDim returns the number of dimensions.
func (da *DataArray) NDim() int {
	return da.variable.NDim()
}

// Size returns the number of elements.
func (da *DataArray) Size() int {
	return da.variable.Size()
}

// Len returns the length of the first dimension.
func (da *DataArray) Len() (int, error) {
	return da.variable.Len()
}

// DType returns the element type.
func (da *DataArray) DType() tensor.DataType {
	return da.variable.DType()
}

// NBytes returns the memory used by the data's elements.
func (da *DataArray) NBytes() int {
	return da.variable.NBytes()
}

// Sizes returns the dimension lengths in axis order.
func (da *DataArray) Sizes() dims.Sizes {
	return da.variable.Sizes()
}

// AxisNum returns the axis number of dim.
func (da *DataArray) AxisNum(dim string) (int, error) {
	return da.variable.AxisNum(dim)
}

// AxisNums returns the axis numbers of several dimensions.
func (da *DataArray) AxisNums(names ...string) ([]int, error) {
	return da.variable.AxisNums(names...)
}

// Iter iterates over the first dimension with the same error rules as
// Variable.Iter.
func (da *DataArray) Iter() iter.Seq2[*DataArray, error] {
	return func(yield func(*DataArray, error) bool) {
		n, err := da.Len()
		if err != nil {
			yield(nil, errors.Wrap(err, "iteration over a 0-d array"))
			return
		}
		for i := range n {
			item, err := da.Index(i)
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

func (da *DataArray) String() string {
	name := ""
	if da.name != "" {
		name = fmt.Sprintf(" %q", da.name)
	}
	return fmt.Sprintf("<warray.DataArray%s (%s)> Size: %dB", name, da.Sizes(), da.NBytes())
}
