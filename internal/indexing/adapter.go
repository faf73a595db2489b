package indexing

import (
	"maps"
	"slices"
	"sync"

	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
)

// Adapter applies explicit indexers to one backing tensor.
type Adapter interface {
	// Get returns the selected sub-tensor. The result is always a tensor,
	// even when every axis is selected by an integer.
	Get(key ExplicitIndexer) (tensor.Tensor, error)

	// Set writes value into the selected positions.
	Set(key ExplicitIndexer, value any) error
}

// AdapterFunc builds an Adapter for a tensor of a registered backend.
type AdapterFunc func(t tensor.Tensor) (Adapter, error)

// NativeAdapter indexes any tensor with native positional indexing.
type NativeAdapter struct {
	t tensor.Indexable
}

var _ Adapter = (*NativeAdapter)(nil)

// NewNativeAdapter wraps t. It fails with ErrNotIndexable when t has no
// native Index/SetIndex.
func NewNativeAdapter(t tensor.Tensor) (Adapter, error) {
	it, ok := t.(tensor.Indexable)
	if !ok {
		return nil, errors.Wrapf(ErrNotIndexable, "%s tensor (%T)", t.Backend(), t)
	}
	return &NativeAdapter{t: it}, nil
}

// Get implements Adapter.
func (a *NativeAdapter) Get(key ExplicitIndexer) (tensor.Tensor, error) {
	out, err := a.t.Index(withRest(key)...)
	if err != nil {
		return nil, err
	}
	t, ok := out.(tensor.Tensor)
	if !ok {
		return nil, errors.AssertionFailedf("%s backend returned %T for an index ending in Rest", a.t.Backend(), out)
	}
	return t, nil
}

// Set implements Adapter.
func (a *NativeAdapter) Set(key ExplicitIndexer, value any) error {
	err := a.t.SetIndex(value, withRest(key)...)
	if err == nil {
		return nil
	}
	if !a.t.OwnsData() && !a.t.Writeable() {
		return errors.WithHint(
			errors.WithSecondaryError(
				errors.Wrap(ErrReadOnlyDestination, "assignment destination is a view"),
				err),
			"copy the data first, e.g. Variable.Values(), and assign into the copy")
	}
	return errors.Wrapf(err, "assigning through %s", key)
}

// withRest turns the indexer's terms into a native index that never
// collapses to a bare element.
func withRest(key ExplicitIndexer) []tensor.Selector {
	return append(key.Terms(), tensor.Rest{})
}

// Registry maps backend names to adapter constructors.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]AdapterFunc
}

// NewRegistry returns a registry with the dense backend registered.
func NewRegistry() *Registry {
	r := &Registry{adapters: make(map[string]AdapterFunc)}
	r.Register(tensor.DenseBackend, NewNativeAdapter)
	return r
}

// Register installs fn for backend, replacing any previous entry.
func (r *Registry) Register(backend string, fn AdapterFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[backend] = fn
}

// Adapter returns an adapter for t chosen by t.Backend().
func (r *Registry) Adapter(t tensor.Tensor) (Adapter, error) {
	r.mu.RLock()
	fn, ok := r.adapters[t.Backend()]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNoAdapter, "%q (registered: %v)", t.Backend(), r.Backends())
	}
	return fn(t)
}

// Backends lists the registered backend names in sorted order.
func (r *Registry) Backends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.adapters))
}
