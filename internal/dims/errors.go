package dims

import "github.com/cockroachdb/errors"

// Common errors.
var (
	ErrTooManyIndices = errors.New("too many indices")
	ErrMissingDims    = errors.New("dimensions do not exist")
	ErrInvalidPolicy  = errors.New("unrecognised option for missing_dims")
	ErrDuplicateDims  = errors.New("duplicate dimensions")
	ErrDimNotFound    = errors.New("dimension not found")
	ErrBothForms      = errors.New("cannot specify both keyword and positional indexers")
)
