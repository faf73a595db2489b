package dims

import (
	"fmt"
	"slices"
	"strings"

	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
)

// Labeled is implemented by arrays whose axes carry dimension names.
type Labeled interface {
	tensor.Shaped
	Dims() []string
}

// CheckDuplicates fails with ErrDuplicateDims when a name appears more than
// once in dims.
func CheckDuplicates(dims []string) error {
	seen := make(map[string]int, len(dims))
	var repeated []string
	for _, d := range dims {
		seen[d]++
		if seen[d] == 2 {
			repeated = append(repeated, d)
		}
	}
	if len(repeated) == 0 {
		return nil
	}
	return errors.Wrapf(ErrDuplicateDims,
		"cannot handle duplicate dimensions, but dimensions %v appear more than once on this object's dims: %v",
		repeated, dims)
}

// AxisNum returns the axis number of dim.
func AxisNum(dims []string, dim string) (int, error) {
	if err := CheckDuplicates(dims); err != nil {
		return 0, err
	}
	i := slices.Index(dims, dim)
	if i < 0 {
		return 0, errors.Wrapf(ErrDimNotFound, "%q not found in array dimensions %v", dim, dims)
	}
	return i, nil
}

// AxisNums returns the axis numbers of several dimensions, in order.
func AxisNums(dims []string, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		n, err := AxisNum(dims, name)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// DimSize pairs a dimension with its length.
type DimSize struct {
	Dim  string
	Size int
}

// Sizes is an ordered mapping from dimension names to lengths.
type Sizes []DimSize

// SizesOf returns the sizes of l in axis order.
func SizesOf(l Labeled) Sizes {
	names, shape := l.Dims(), l.Shape()
	out := make(Sizes, len(names))
	for i, d := range names {
		out[i] = DimSize{Dim: d, Size: shape[i]}
	}
	return out
}

// Get returns the length of dim. With duplicate names the first wins.
func (s Sizes) Get(dim string) (int, bool) {
	for _, ds := range s {
		if ds.Dim == dim {
			return ds.Size, true
		}
	}
	return 0, false
}

// String renders sizes as "x: 4, y: 3".
func (s Sizes) String() string {
	parts := make([]string, len(s))
	for i, ds := range s {
		parts[i] = fmt.Sprintf("%s: %d", ds.Dim, ds.Size)
	}
	return strings.Join(parts, ", ")
}
