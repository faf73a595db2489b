package dataarray

import (
	"reflect"

	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/born-ml/warray/internal/variable"
	"github.com/cockroachdb/errors"
)

// IselOption configures Isel.
type IselOption func(*iselConfig)

type iselConfig struct {
	drop bool
	vars []variable.IselOption
}

// WithDrop drops coordinates that become 0-d instead of keeping them as
// scalar coordinates.
func WithDrop(drop bool) IselOption {
	return func(c *iselConfig) { c.drop = drop }
}

// WithMissingDims sets the policy for requested dimensions the array lacks.
func WithMissingDims(p dims.MissingDims) IselOption {
	return func(c *iselConfig) { c.vars = append(c.vars, variable.WithMissingDims(p)) }
}

// WithIndexer adds one dimension to the keyword form of the request.
func WithIndexer(dim string, term any) IselOption {
	return func(c *iselConfig) { c.vars = append(c.vars, variable.WithIndexer(dim, term)) }
}

// WithWarnFunc replaces the receiver of missing-dimension warnings.
func WithWarnFunc(f func(error)) IselOption {
	return func(c *iselConfig) { c.vars = append(c.vars, variable.WithWarnFunc(f)) }
}

// Isel returns a new DataArray selected along the named dimensions.
//
// Integer terms drop their dimension. Coordinates along a selected
// dimension are selected the same way; those that become 0-d are kept as
// scalar coordinates unless WithDrop(true) is given.
func (da *DataArray) Isel(indexers map[string]any, opts ...IselOption) (*DataArray, error) {
	var cfg iselConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	vo := variable.NewIselOptions(cfg.vars...)
	merged, err := vo.Indexers(indexers, "isel")
	if err != nil {
		return nil, err
	}

	for d, term := range merged {
		if IsFancy(term) {
			return nil, errors.Wrapf(ErrNotImplemented, "fancy indexing along %q with %T", d, term)
		}
	}

	v, err := da.variable.Isel(merged, variable.WithMissingDims(vo.MissingDims), variable.WithWarnFunc(vo.Warn))
	if err != nil {
		return nil, err
	}

	var newDims []string
	for _, d := range da.variable.Dims() {
		if term, ok := merged[d]; ok && isInteger(term) {
			continue
		}
		newDims = append(newDims, d)
	}

	coords := newCoordinates()
	for name, cv := range da.coords.All() {
		restricted := make(map[string]any)
		for _, d := range cv.Dims() {
			if term, ok := merged[d]; ok {
				restricted[d] = term
			}
		}
		if len(restricted) > 0 {
			if cv, err = cv.Isel(restricted); err != nil {
				return nil, errors.Wrapf(err, "coordinate %q", name)
			}
			if cfg.drop && cv.NDim() == 0 {
				continue
			}
		}
		coords.set(name, cv)
	}

	return New(v, WithCoordinates(coords), WithDims(newDims...), WithName(da.name), WithAttrs(da.attrs))
}

// Index selects by position. A single map[string]any key is a
// dimension-keyed request; otherwise the terms are matched to dimensions
// in order, with indexing.Ellipsis and right-padding as for Variable.Index.
// A single string key would be a coordinate lookup, which is not supported.
func (da *DataArray) Index(key ...any) (*DataArray, error) {
	if len(key) == 1 {
		switch k := key[0].(type) {
		case string:
			return nil, errors.Wrapf(ErrNotImplemented, "indexing by coordinate name %q", k)
		case map[string]any:
			return da.Isel(k)
		}
	}
	expanded, err := dims.Expand(key, da.NDim())
	if err != nil {
		return nil, err
	}
	indexers := make(map[string]any, len(expanded))
	for i, d := range da.variable.Dims() {
		indexers[d] = expanded[i]
	}
	return da.Isel(indexers)
}

// IsFancy reports whether term needs vectorized indexing. Integers, slices,
// 0-d labeled scalars, tensors of rank at most 1 and lists that are empty or
// start with an integer are not fancy; everything else is.
func IsFancy(term any) bool {
	switch t := term.(type) {
	case indexing.Slice, tensor.Span:
		return false
	case variable.Holder:
		return t.Variable().NDim() != 0
	case *variable.Variable:
		return t.NDim() != 0
	case tensor.Tensor:
		return tensor.NDim(t) > 1
	}
	if _, ok := indexing.AsInteger(term); ok {
		return false
	}
	rv := reflect.ValueOf(term)
	if rv.Kind() == reflect.Slice {
		if rv.Len() == 0 {
			return false
		}
		_, ok := indexing.AsInteger(rv.Index(0).Interface())
		return !ok
	}
	return true
}

func isInteger(term any) bool {
	k, err := variable.UnwrapScalar(term)
	if err != nil {
		return false
	}
	_, ok := indexing.AsInteger(k)
	return ok
}
