// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package warray

import (
	"github.com/born-ml/warray/internal/dataarray"
	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/born-ml/warray/internal/variable"
)

// Errors returned by this package. Match them with errors.Is.
var (
	ErrCoordsMismatch      = dataarray.ErrCoordsMismatch
	ErrConflictingSizes    = dataarray.ErrConflictingSizes
	ErrDimsReadOnly        = dataarray.ErrDimsReadOnly
	ErrDimsMismatch        = variable.ErrDimsMismatch
	ErrInvalidDim          = variable.ErrInvalidDim
	ErrShapeMismatch       = variable.ErrShapeMismatch
	ErrNotImplemented      = variable.ErrNotImplemented
	ErrUnsupportedData     = variable.ErrUnsupportedData
	ErrNoDims              = variable.ErrNoDims
	ErrTooManyIndices      = dims.ErrTooManyIndices
	ErrMissingDims         = dims.ErrMissingDims
	ErrInvalidPolicy       = dims.ErrInvalidPolicy
	ErrDuplicateDims       = dims.ErrDuplicateDims
	ErrDimNotFound         = dims.ErrDimNotFound
	ErrBothIndexerForms    = dims.ErrBothForms
	ErrInvalidTerm         = indexing.ErrInvalidTerm
	ErrReadOnlyDestination = indexing.ErrReadOnlyDestination
	ErrIndexOutOfRange     = tensor.ErrIndexOutOfRange
	ErrZeroStep            = tensor.ErrZeroStep
)
