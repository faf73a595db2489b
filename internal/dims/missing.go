package dims

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
)

// MissingDims says what to do with requested dimensions an array lacks.
type MissingDims string

// Policies for MissingDims.
const (
	Raise  MissingDims = "raise"
	Warn   MissingDims = "warn"
	Ignore MissingDims = "ignore"
)

// ParseMissingDims validates a policy name.
func ParseMissingDims(s string) (MissingDims, error) {
	p := MissingDims(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate reports ErrInvalidPolicy for unknown policies.
func (p MissingDims) Validate() error {
	switch p {
	case Raise, Warn, Ignore:
		return nil
	}
	return errors.Wrapf(ErrInvalidPolicy, "%q (expected raise, warn or ignore)", string(p))
}

// FilterMissing checks the keys of indexers against dims.
//
// With Raise any unknown key is an ErrMissingDims error. With Warn unknown
// keys are dropped and warn, when non-nil, receives the same error. With
// Ignore they are dropped silently. The result is always a new map.
func FilterMissing(indexers map[string]any, dims []string, policy MissingDims, warn func(error)) (map[string]any, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(indexers))
	var invalid []string
	for k, v := range indexers {
		if !slices.Contains(dims, k) {
			invalid = append(invalid, k)
			continue
		}
		out[k] = v
	}
	if len(invalid) == 0 {
		return out, nil
	}

	slices.Sort(invalid)
	err := errors.Wrapf(ErrMissingDims, "dimensions %s do not exist. Expected one or more of %s",
		fmt.Sprint(invalid), fmt.Sprint(dims))
	switch policy {
	case Raise:
		return nil, err
	case Warn:
		if warn != nil {
			warn(err)
		}
	}
	return out, nil
}

// Merge combines the map and keyword forms of a dimension-keyed request.
// At most one form may be non-empty; op names the calling operation.
func Merge(positional, keywords map[string]any, op string) (map[string]any, error) {
	switch {
	case len(positional) == 0:
		return keywords, nil
	case len(keywords) == 0:
		return positional, nil
	}
	return nil, errors.Wrapf(ErrBothForms, ".%s", op)
}
