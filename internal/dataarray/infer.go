package dataarray

import (
	"fmt"
	"slices"

	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/born-ml/warray/internal/variable"
	"github.com/cockroachdb/errors"
)

// Coord is one entry of a name-keyed coordinate mapping.
type Coord struct {
	Name  string
	Value any
}

// Option configures New.
type Option func(*options)

type options struct {
	positional []any
	named      []Coord
	coords     *Coordinates
	dims       []string
	name       string
	nameSet    bool
	attrs      map[string]any
}

// WithCoords supplies one coordinate per dimension, in dimension order.
// Each value is 1-D data, a Variable or a variable.Spec.
func WithCoords(values ...any) Option {
	return func(o *options) { o.positional = append([]any{}, values...) }
}

// WithNamedCoords supplies coordinates keyed by name. When dims are not
// given and there is one coordinate per dimension, the names become the
// dimensions.
func WithNamedCoords(coords ...Coord) Option {
	return func(o *options) { o.named = append([]Coord{}, coords...) }
}

// WithCoordinates reuses an existing coordinate set.
func WithCoordinates(c *Coordinates) Option {
	return func(o *options) { o.coords = c }
}

// WithDims names the dimensions of the data.
func WithDims(names ...string) Option {
	return func(o *options) { o.dims = slices.Clone(names) }
}

// WithName names the array.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
		o.nameSet = true
	}
}

// WithAttrs attaches attributes to the array.
func WithAttrs(attrs map[string]any) Option {
	return func(o *options) { o.attrs = attrs }
}

// inferCoordsAndDims works out the dimension names of data with the given
// shape and builds its coordinates.
func inferCoordsAndDims(shape tensor.Shape, o *options) (*Coordinates, []string, error) {
	given := 0
	for _, set := range []bool{o.positional != nil, o.named != nil, o.coords != nil} {
		if set {
			given++
		}
	}
	if given > 1 {
		return nil, nil, errors.Wrap(ErrCoordsMismatch, "positional, named and prebuilt coordinates are mutually exclusive")
	}

	if o.positional != nil && len(o.positional) != len(shape) {
		return nil, nil, errors.Wrapf(ErrCoordsMismatch,
			"coords is not dict-like, but it has %d items, which does not match the %d dimensions of the data",
			len(o.positional), len(shape))
	}

	dimNames := o.dims
	switch {
	case dimNames == nil:
		dimNames = make([]string, len(shape))
		for i := range dimNames {
			dimNames[i] = fmt.Sprintf("dim_%d", i)
		}
		switch {
		case o.named != nil && len(o.named) == len(shape):
			for i, c := range o.named {
				dimNames[i] = c.Name
			}
		case o.coords != nil && o.coords.Len() == len(shape):
			dimNames = o.coords.Names()
		}
	case len(dimNames) != len(shape):
		return nil, nil, errors.Wrapf(ErrDimsMismatch,
			"different number of dimensions on data and dims: %d vs %d", len(shape), len(dimNames))
	}
	for _, d := range dimNames {
		if d == "" {
			return nil, nil, errors.Wrap(ErrInvalidDim, "dimension names must be non-empty strings")
		}
	}

	coords := o.coords
	if coords == nil {
		coords = newCoordinates()
		for _, c := range o.named {
			v, err := variable.AsVariable(c.Value, c.Name)
			if err != nil {
				return nil, nil, err
			}
			coords.set(c.Name, v)
		}
		for i, value := range o.positional {
			dim := dimNames[i]
			v, err := variable.AsVariable(value, dim)
			if err != nil {
				return nil, nil, err
			}
			if err := v.SetDims(dim); err != nil {
				return nil, nil, errors.Wrapf(err, "coordinate %q", dim)
			}
			coords.set(dim, v)
		}
	}

	if err := checkCoordsDims(shape, coords, dimNames); err != nil {
		return nil, nil, err
	}
	return coords, dimNames, nil
}

// checkCoordsDims verifies that every coordinate lives on the array's
// dimensions with matching lengths.
func checkCoordsDims(shape tensor.Shape, coords *Coordinates, dimNames []string) error {
	sizes := make(map[string]int, len(dimNames))
	for i, d := range dimNames {
		sizes[d] = shape[i]
	}
	for name, v := range coords.All() {
		for _, d := range v.Dims() {
			if !slices.Contains(dimNames, d) {
				return errors.Wrapf(ErrCoordsMismatch,
					"coordinate %s has dimensions %v, but these are not a subset of the DataArray dimensions %v",
					name, v.Dims(), dimNames)
			}
		}
		for _, ds := range dims.SizesOf(v) {
			if want := sizes[ds.Dim]; ds.Size != want {
				return errors.Wrapf(ErrConflictingSizes,
					"conflicting sizes for dimension %q: length %d on the data but length %d on coordinate %q",
					ds.Dim, want, ds.Size, name)
			}
		}
	}
	return nil
}
