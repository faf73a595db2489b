// Package dims resolves dimension names against a labeled array: it expands
// positional keys to full rank, filters dimension-keyed requests and maps
// names to axis numbers.
package dims

import (
	"github.com/born-ml/warray/internal/indexing"
	"github.com/cockroachdb/errors"
)

// Expand returns key with exactly ndim terms.
//
// The first indexing.Ellipsis is replaced by as many full slices as needed
// to reach ndim; any later Ellipsis becomes a single full slice. A key that
// is still short is padded with full slices on the right.
func Expand(key []any, ndim int) ([]any, error) {
	out := make([]any, 0, max(ndim, len(key)))
	found := false
	for _, k := range key {
		if _, ok := k.(indexing.EllipsisType); !ok {
			out = append(out, k)
			continue
		}
		if found {
			out = append(out, indexing.All)
			continue
		}
		found = true
		for n := ndim + 1 - len(key); n > 0; n-- {
			out = append(out, indexing.All)
		}
	}
	if len(out) > ndim {
		return nil, errors.Wrapf(ErrTooManyIndices,
			"array is %d-dimensional, but %d were indexed", ndim, len(out))
	}
	for len(out) < ndim {
		out = append(out, indexing.All)
	}
	return out, nil
}
