package dataarray

import (
	"github.com/born-ml/warray/internal/variable"
	"github.com/cockroachdb/errors"
)

// Common errors.
var (
	ErrCoordsMismatch   = errors.New("coordinates do not match the data")
	ErrConflictingSizes = errors.New("conflicting sizes")
	ErrDimsReadOnly     = errors.New("cannot assign dims on a DataArray")

	ErrDimsMismatch   = variable.ErrDimsMismatch
	ErrInvalidDim     = variable.ErrInvalidDim
	ErrNotImplemented = variable.ErrNotImplemented
)
