// Package indexing holds the positional side of labeled-array indexing:
// explicit indexers, the adapters that apply them to backing tensors and
// the registry that picks an adapter for a tensor.
package indexing

import (
	"slices"
	"strconv"
	"strings"

	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
)

// ExplicitIndexer is a validated positional key with one term per axis.
//
// The set of indexers is closed. BasicIndexer is the only variant today;
// outer and vectorized indexers would be added here as new variants.
type ExplicitIndexer interface {
	// Terms returns a copy of the per-axis terms.
	Terms() []tensor.Selector
	explicitIndexer()
}

// BasicIndexer is a tuple of integer and slice terms. Every axis is
// selected independently and integer terms drop their axis.
type BasicIndexer struct {
	terms []tensor.Selector
}

var _ ExplicitIndexer = BasicIndexer{}

// NewBasicIndexer validates and normalises key. Integers of any kind become
// tensor.Pick, slices become tensor.Span with absent bounds preserved.
// Any other term fails with ErrInvalidTerm.
func NewBasicIndexer(key []any) (BasicIndexer, error) {
	terms := make([]tensor.Selector, 0, len(key))
	for _, k := range key {
		sel, err := basicTerm(k)
		if err != nil {
			return BasicIndexer{}, err
		}
		terms = append(terms, sel)
	}
	return BasicIndexer{terms: terms}, nil
}

func basicTerm(k any) (tensor.Selector, error) {
	switch k := k.(type) {
	case tensor.Span:
		return k, nil
	case Slice:
		var span tensor.Span
		for _, b := range []struct {
			dst *tensor.OptInt
			v   any
		}{{&span.Start, k.Start}, {&span.Stop, k.Stop}, {&span.Step, k.Step}} {
			o, err := optInt(b.v)
			if err != nil {
				return nil, errors.Wrapf(err, "%s", k)
			}
			*b.dst = o
		}
		return span, nil
	}
	if i, ok := AsInteger(k); ok {
		return tensor.Pick(i), nil
	}
	return nil, errors.Wrapf(ErrInvalidTerm,
		"unexpected indexer type for BasicIndexer: %v (%T); expected an integer or a slice", k, k)
}

func optInt(v any) (tensor.OptInt, error) {
	if v == nil {
		return tensor.None, nil
	}
	i, ok := AsInteger(v)
	if !ok {
		return tensor.None, errors.Wrapf(ErrInvalidTerm, "slice bound %v (%T) is not an integer", v, v)
	}
	return tensor.Some(i), nil
}

// Terms returns a copy of the indexer's terms.
func (b BasicIndexer) Terms() []tensor.Selector {
	return slices.Clone(b.terms)
}

// Len returns the number of terms.
func (b BasicIndexer) Len() int {
	return len(b.terms)
}

func (BasicIndexer) explicitIndexer() {}

func (b BasicIndexer) String() string {
	parts := make([]string, len(b.terms))
	for i, t := range b.terms {
		switch t := t.(type) {
		case tensor.Pick:
			parts[i] = strconv.Itoa(int(t))
		case tensor.Span:
			parts[i] = t.String()
		}
	}
	return "BasicIndexer((" + strings.Join(parts, ", ") + "))"
}
