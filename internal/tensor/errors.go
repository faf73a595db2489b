package tensor

import "github.com/cockroachdb/errors"

// Common errors.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrUnsupportedDType  = errors.New("unsupported data type")
	ErrDTypeMismatch     = errors.New("data type mismatch")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrIndexCount        = errors.New("wrong number of indices")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrZeroStep          = errors.New("slice step cannot be zero")
	ErrTooManySelectors  = errors.New("too many indices for tensor")
	ErrMultipleRest      = errors.New("an index can only have a single rest-of-axes marker")
	ErrNotWriteable      = errors.New("tensor is not writeable")
	ErrUnsized           = errors.New("len() of unsized object")
	ErrInvalidConversion = errors.New("value cannot be stored in tensor")
)
