// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/warray/internal/tensor"
)

// RawTensor is the dense tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Strides()
//   - Element access via At()
//   - Zero-copy strided views via Index()
//   - Writes through views via SetIndex()
//   - Reference counting for efficient memory management
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	row, _ := raw.Index(tensor.Pick(0), tensor.Rest{})  // (3,) view
//	clone := raw.Clone()                                // Shares buffer via reference counting
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled dense tensor.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}
