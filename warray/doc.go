// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package warray provides labeled N-dimensional arrays.
//
// A DataArray pairs a tensor with a name for every axis, optional
// coordinate labels per dimension, a name and free-form attributes.
// Positions are selected by dimension name rather than axis order.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/warray/tensor"
//	    "github.com/born-ml/warray/warray"
//	)
//
//	func main() {
//	    data, _ := tensor.FromSlice(make([]float64, 12), tensor.Shape{4, 3})
//	    da, _ := warray.New(data,
//	        warray.WithDims("x", "y"),
//	        warray.WithCoords([]int64{10, 20, 30, 40}, []string{"a", "b", "c"}),
//	    )
//
//	    row, _ := da.Isel(map[string]any{"x": 0})              // dims (y)
//	    part, _ := da.Isel(nil, warray.WithIndexer("y", warray.S(1, 3)))
//	}
//
// # Indexer Terms
//
// An indexer term is an integer (drops the dimension), a Slice built with
// S (keeps it) or All. Negative integers count from the end. Ellipsis
// stands for all remaining dimensions in positional keys passed to Index.
//
// # Missing Dimensions
//
// Requests for dimensions an array lacks follow a MissingDims policy:
// Raise (default) fails, Warn logs and drops them, Ignore drops them
// silently.
package warray
