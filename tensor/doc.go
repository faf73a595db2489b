// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the backing tensors that labeled arrays wrap.
//
// # Overview
//
// A labeled array does not care how its values are stored, only that the
// storage satisfies the Tensor interface: a shape, an element type, element
// access and a backend name. This package provides:
//   - Tensor and Indexable, the capability sets
//   - RawTensor, a dense strided tensor with zero-copy views
//   - Arrow-backed label tensors for strings (FromStrings)
//
// # Basic Usage
//
//	import "github.com/born-ml/warray/tensor"
//
//	func main() {
//	    raw, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//
//	    // Native positional indexing: rows 0..1, every other column
//	    view, _ := raw.Index(tensor.FullSpan, tensor.Span{Step: tensor.Some(2)})
//
//	    labels := tensor.FromStrings([]string{"a", "b"})
//	}
//
// # Supported Data Types
//
// Dense tensors hold float32, float64, int32, int64, uint8 and bool via the
// DType constraint. String is only available on arrow-backed tensors.
//
// # Memory Management
//
// Views share the buffer of the tensor they were taken from. The buffer is
// reference-counted; ReadOnly produces a view that rejects writes.
package tensor
