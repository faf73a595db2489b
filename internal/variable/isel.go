package variable

import (
	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/born-ml/warray/internal/logger"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
)

// IselOption configures Isel and Assign.
type IselOption func(*IselOptions)

// IselOptions is the resolved form of a list of IselOption.
type IselOptions struct {
	MissingDims dims.MissingDims
	Keywords    map[string]any
	Warn        func(error)
}

// NewIselOptions applies opts over the defaults: raise on missing
// dimensions and send warnings to the global logger.
func NewIselOptions(opts ...IselOption) IselOptions {
	o := IselOptions{MissingDims: dims.Raise, Warn: logMissing}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Indexers merges the map form of a request with the keyword form.
func (o IselOptions) Indexers(indexers map[string]any, op string) (map[string]any, error) {
	return dims.Merge(indexers, o.Keywords, op)
}

// WithMissingDims sets the policy for requested dimensions the variable
// lacks.
func WithMissingDims(p dims.MissingDims) IselOption {
	return func(o *IselOptions) { o.MissingDims = p }
}

// WithIndexer adds one dimension to the keyword form of the request. It
// cannot be combined with a non-empty indexers map.
func WithIndexer(dim string, term any) IselOption {
	return func(o *IselOptions) {
		if o.Keywords == nil {
			o.Keywords = make(map[string]any)
		}
		o.Keywords[dim] = term
	}
}

// WithWarnFunc replaces the receiver of missing-dimension warnings.
func WithWarnFunc(f func(error)) IselOption {
	return func(o *IselOptions) { o.Warn = f }
}

func logMissing(err error) {
	logger.Logger.Warnw("dimensions do not exist", "error", err)
}

// Isel returns a new Variable indexed along the named dimensions. Each
// term is an integer, which drops the dimension, or an indexing.Slice.
// Dimensions not named keep all their positions.
func (v *Variable) Isel(indexers map[string]any, opts ...IselOption) (*Variable, error) {
	key, err := v.iselKey(indexers, NewIselOptions(opts...), "isel")
	if err != nil {
		return nil, err
	}
	return v.Index(key)
}

// Assign writes value into the positions selected by indexers. value is
// a scalar or a tensor (or Variable) whose shape matches the selection.
func (v *Variable) Assign(indexers map[string]any, value any, opts ...IselOption) error {
	key, err := v.iselKey(indexers, NewIselOptions(opts...), "assign")
	if err != nil {
		return err
	}
	b, _, err := v.basicIndexer(key)
	if err != nil {
		return err
	}
	a, err := Adapters.Adapter(v.data)
	if err != nil {
		return err
	}
	if src, ok := value.(*Variable); ok {
		value = src.data
	}
	return a.Set(b, value)
}

// iselKey turns a dimension-keyed request into a full positional key.
func (v *Variable) iselKey(indexers map[string]any, o IselOptions, op string) ([]any, error) {
	merged, err := o.Indexers(indexers, op)
	if err != nil {
		return nil, err
	}
	filtered, err := dims.FilterMissing(merged, v.dims, o.MissingDims, o.Warn)
	if err != nil {
		return nil, err
	}
	key := make([]any, len(v.dims))
	for i, d := range v.dims {
		if term, ok := filtered[d]; ok {
			key[i] = term
		} else {
			key[i] = indexing.All
		}
	}
	return key, nil
}

// Index returns a new Variable selected by a positional key, one term
// per dimension. The key may be short or contain indexing.Ellipsis.
func (v *Variable) Index(key []any) (*Variable, error) {
	b, newDims, err := v.basicIndexer(key)
	if err != nil {
		return nil, err
	}
	a, err := Adapters.Adapter(v.data)
	if err != nil {
		return nil, err
	}
	data, err := a.Get(b)
	if err != nil {
		return nil, err
	}
	return v.replace(withDims(newDims), withData(data))
}

// basicIndexer expands key and builds the indexer and the dimensions that
// survive it.
func (v *Variable) basicIndexer(key []any) (indexing.BasicIndexer, []string, error) {
	expanded, err := dims.Expand(key, v.NDim())
	if err != nil {
		return indexing.BasicIndexer{}, nil, err
	}
	for i, k := range expanded {
		if expanded[i], err = UnwrapScalar(k); err != nil {
			return indexing.BasicIndexer{}, nil, err
		}
	}

	newDims := make([]string, 0, len(v.dims))
	for i, k := range expanded {
		if !indexing.IsBasic(k) {
			return indexing.BasicIndexer{}, nil, errors.Wrapf(ErrNotImplemented,
				"cannot yet index with %T: vectorized indexing", k)
		}
		if _, isInt := indexing.AsInteger(k); !isInt {
			newDims = append(newDims, v.dims[i])
		}
	}

	b, err := indexing.NewBasicIndexer(expanded)
	if err != nil {
		return indexing.BasicIndexer{}, nil, err
	}
	return b, newDims, nil
}

// Holder is implemented by labeled arrays built around a Variable.
type Holder interface {
	Variable() *Variable
}

// UnwrapScalar replaces a 0-d labeled array or 0-d tensor used as an index
// term by the element it holds. Other terms are returned unchanged.
func UnwrapScalar(k any) (any, error) {
	if h, ok := k.(Holder); ok {
		k = h.Variable()
	}
	if v, ok := k.(*Variable); ok {
		if v.NDim() != 0 {
			return v, nil
		}
		k = v.data
	}
	if t, ok := k.(tensor.Tensor); ok && tensor.NDim(t) == 0 {
		return t.At()
	}
	return k, nil
}
