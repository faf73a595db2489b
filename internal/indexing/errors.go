package indexing

import "github.com/cockroachdb/errors"

// Common errors.
var (
	ErrInvalidTerm         = errors.New("invalid indexer term")
	ErrNoAdapter           = errors.New("no index adapter for backend")
	ErrNotIndexable        = errors.New("tensor does not support native positional indexing")
	ErrReadOnlyDestination = errors.New("assignment destination is a read-only view")
)
