// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package warray

import (
	"github.com/born-ml/warray/internal/dataarray"
	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/born-ml/warray/internal/variable"
)

// Type aliases for public API

// DataArray is a labeled N-dimensional array.
type DataArray = dataarray.DataArray

// Variable is a tensor with named dimensions and attributes.
type Variable = variable.Variable

// Coordinates holds the coordinate variables of a DataArray in insertion order.
type Coordinates = dataarray.Coordinates

// Coord is a named coordinate for WithNamedCoords.
type Coord = dataarray.Coord

// Spec describes a Variable as dims, data and attrs.
type Spec = variable.Spec

// Option configures New.
type Option = dataarray.Option

// IselOption configures DataArray.Isel.
type IselOption = dataarray.IselOption

// Slice is a start:stop:step indexer term.
type Slice = indexing.Slice

// MissingDims says what to do with requested dimensions an array lacks.
type MissingDims = dims.MissingDims

// Sizes lists dimension sizes in dimension order.
type Sizes = dims.Sizes

// Missing dimension policies.
const (
	Raise  MissingDims = dims.Raise
	Warn   MissingDims = dims.Warn
	Ignore MissingDims = dims.Ignore
)

// All selects a whole dimension.
var All = indexing.All

// Ellipsis expands to every dimension not named by a positional key.
var Ellipsis = indexing.Ellipsis

// New builds a DataArray around data.
//
// data may be a tensor, a Go slice, a scalar, a Variable or another
// DataArray. Without WithDims dimension names default to dim_0, dim_1, ...
func New(data any, opts ...Option) (*DataArray, error) {
	return dataarray.New(data, opts...)
}

// NewVariable builds a Variable from dims and any data AsVariable accepts.
func NewVariable(dimNames []string, data any, attrs map[string]any) (*Variable, error) {
	return variable.AsVariable(Spec{Dims: dimNames, Data: data, Attrs: attrs}, "")
}

// S builds a Slice from up to three bounds: stop, start and stop, or
// start, stop and step. nil leaves a bound open.
func S(bounds ...any) Slice {
	return indexing.S(bounds...)
}

// ParseMissingDims validates a policy name.
func ParseMissingDims(s string) (MissingDims, error) {
	return dims.ParseMissingDims(s)
}

// IsFancy reports whether term needs vectorized indexing.
func IsFancy(term any) bool {
	return dataarray.IsFancy(term)
}

// WithCoords supplies one coordinate per dimension, in dimension order.
func WithCoords(values ...any) Option { return dataarray.WithCoords(values...) }

// WithNamedCoords supplies coordinates by name.
func WithNamedCoords(coords ...Coord) Option { return dataarray.WithNamedCoords(coords...) }

// WithCoordinates reuses existing coordinate variables.
func WithCoordinates(c *Coordinates) Option { return dataarray.WithCoordinates(c) }

// WithDims names the dimensions.
func WithDims(names ...string) Option { return dataarray.WithDims(names...) }

// WithName sets the array name.
func WithName(name string) Option { return dataarray.WithName(name) }

// WithAttrs sets the array attributes.
func WithAttrs(attrs map[string]any) Option { return dataarray.WithAttrs(attrs) }

// WithIndexer selects term along dim.
func WithIndexer(dim string, term any) IselOption { return dataarray.WithIndexer(dim, term) }

// WithDrop drops coordinates of dimensions removed by integer indexers
// instead of keeping them as scalar coordinates.
func WithDrop(drop bool) IselOption { return dataarray.WithDrop(drop) }

// WithMissingDims sets the missing dimension policy.
func WithMissingDims(p MissingDims) IselOption { return dataarray.WithMissingDims(p) }

// WithWarnFunc replaces the logger used by the Warn policy.
func WithWarnFunc(f func(error)) IselOption { return dataarray.WithWarnFunc(f) }
