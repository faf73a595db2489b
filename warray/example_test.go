// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package warray_test

import (
	"fmt"

	"github.com/born-ml/warray/tensor"
	"github.com/born-ml/warray/warray"
)

func Example() {
	data, _ := tensor.FromSlice([]float64{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 10, 11,
	}, tensor.Shape{4, 3})

	da, err := warray.New(data,
		warray.WithDims("x", "y"),
		warray.WithCoords([]int64{10, 20, 30, 40}, []string{"a", "b", "c"}),
		warray.WithName("grid"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	row, err := da.Isel(map[string]any{"x": 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	vals, _ := tensor.Values[float64](row.Data())
	fmt.Println(row.Dims(), vals)
	// Output: [y] [3 4 5]
}

func ExampleDataArray_Index() {
	data, _ := tensor.FromSlice([]int64{0, 1, 2, 3, 4, 5}, tensor.Shape{2, 3})
	da, _ := warray.New(data, warray.WithDims("x", "y"))

	sub, err := da.Index(warray.Ellipsis, warray.S(nil, nil, 2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sub.Sizes())
	// Output: x: 2, y: 2
}
