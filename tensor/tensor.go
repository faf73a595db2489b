// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/warray/internal/arrowtensor"
	"github.com/born-ml/warray/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for dense tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
	String  DataType = tensor.String
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Shaped is implemented by anything with a shape.
type Shaped = tensor.Shaped

// Tensor is the capability set a labeled array needs from its storage.
type Tensor = tensor.Tensor

// Indexable is a Tensor with native positional indexing.
type Indexable = tensor.Indexable

// Selector is one term of a native positional index: Pick, Span or Rest.
type Selector = tensor.Selector

// Pick selects one position and drops the axis.
type Pick = tensor.Pick

// Span selects a strided range and keeps the axis.
type Span = tensor.Span

// Rest selects every axis the other selectors do not consume.
type Rest = tensor.Rest

// OptInt is an optional slice bound.
type OptInt = tensor.OptInt

// FullSpan selects a whole axis.
var FullSpan = tensor.FullSpan

// None is the absent slice bound.
var None = tensor.None

// Some returns a present slice bound.
func Some(v int) OptInt {
	return tensor.Some(v)
}

// FromSlice creates a dense tensor holding a copy of data.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a 0-d dense tensor.
func Scalar[T DType](v T) *RawTensor {
	return tensor.Scalar(v)
}

// Values returns the elements of t in row-major order.
func Values[T DType](t Tensor) ([]T, error) {
	return tensor.Values[T](t)
}

// Materialize returns a contiguous dense copy of t.
func Materialize(t Tensor) (*RawTensor, error) {
	return tensor.Materialize(t)
}

// Copier is implemented by tensors that copy themselves within their backend.
type Copier = tensor.Copier

// Copy returns a contiguous copy of t that shares no storage with it.
func Copy(t Tensor) (Tensor, error) {
	return tensor.Copy(t)
}

// FromStrings creates an immutable 1-D string tensor backed by Apache Arrow.
func FromStrings(vals []string) Tensor {
	return arrowtensor.FromStrings(vals)
}
