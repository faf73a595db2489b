package variable

import (
	"github.com/born-ml/warray/internal/dims"
	"github.com/cockroachdb/errors"
)

// Common errors.
var (
	ErrDimsMismatch     = errors.New("dimensions do not match the data")
	ErrInvalidDim       = errors.New("invalid dimension name")
	ErrShapeMismatch    = errors.New("replacement data must match the variable's shape")
	ErrNotImplemented   = errors.New("not implemented")
	ErrUnsupportedData  = errors.New("unsupported data")
	ErrNoDims           = errors.New("no explicit dimension names")
	ErrBothIndexerForms = dims.ErrBothForms
)
