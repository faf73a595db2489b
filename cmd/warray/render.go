package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/born-ml/warray/internal/dataarray"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
)

// maxCoordValues caps how many coordinate labels a table cell shows.
const maxCoordValues = 6

// render prints a summary, the coordinates and the values of da.
func render(w io.Writer, da *dataarray.DataArray) error {
	fmt.Fprintln(w, da.String())

	if da.Coords().Len() > 0 {
		rows := pterm.TableData{{"", "Coordinate", "Dims", "DType", "Values"}}
		for name, c := range da.Coords().All() {
			marker := " "
			if slices.Contains(da.Dims(), name) {
				marker = "*"
			}
			vals, err := formatFlat(c.Data(), maxCoordValues)
			if err != nil {
				return err
			}
			rows = append(rows, []string{marker, name, "(" + strings.Join(c.Dims(), ", ") + ")", c.DType().String(), vals})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return errors.Wrap(err, "rendering coordinates")
		}
		fmt.Fprintln(w, table)
	}

	if da.NDim() != 2 {
		vals, err := formatFlat(da.Data(), -1)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, vals)
		return nil
	}

	shape := da.Shape()
	rows := make(pterm.TableData, 0, shape[0])
	for i := range shape[0] {
		row := make([]string, shape[1])
		for j := range shape[1] {
			v, err := da.Data().At(i, j)
			if err != nil {
				return err
			}
			row[j] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	table, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering values")
	}
	fmt.Fprintln(w, table)
	return nil
}

// formatFlat renders the elements of t in row-major order, stopping after
// limit elements when limit is non-negative.
func formatFlat(t tensor.Tensor, limit int) (string, error) {
	shape := t.Shape()
	if len(shape) == 0 {
		v, err := t.At()
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}

	n := shape.NumElements()
	shown := n
	if limit >= 0 && limit < n {
		shown = limit
	}
	strides := shape.ComputeStrides()
	idx := make([]int, len(shape))
	parts := make([]string, 0, shown+1)
	for i := range shown {
		rem := i
		for axis, st := range strides {
			idx[axis] = rem / st
			rem %= st
		}
		v, err := t.At(idx...)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprint(v))
	}
	if shown < n {
		parts = append(parts, "...")
	}
	return "[" + strings.Join(parts, " ") + "]", nil
}
