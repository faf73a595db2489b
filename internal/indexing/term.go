package indexing

import (
	"fmt"

	"github.com/born-ml/warray/internal/tensor"
)

// Slice is a slice term as written by a caller. Each bound is nil (absent)
// or a value of any Go integer kind; NewBasicIndexer normalises it.
type Slice struct {
	Start, Stop, Step any
}

// All selects a whole axis.
var All = Slice{}

// S builds a Slice from up to three bounds:
// S(stop), S(start, stop) or S(start, stop, step). S() is All.
func S(bounds ...any) Slice {
	switch len(bounds) {
	case 0:
		return All
	case 1:
		return Slice{Stop: bounds[0]}
	case 2:
		return Slice{Start: bounds[0], Stop: bounds[1]}
	case 3:
		return Slice{Start: bounds[0], Stop: bounds[1], Step: bounds[2]}
	default:
		panic(fmt.Sprintf("indexing.S expected at most 3 bounds, got %d", len(bounds)))
	}
}

func (s Slice) String() string {
	return fmt.Sprintf("slice(%s, %s, %s)", bound(s.Start), bound(s.Stop), bound(s.Step))
}

func bound(v any) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprint(v)
}

// EllipsisType is the type of Ellipsis.
type EllipsisType struct{}

// Ellipsis stands for "all remaining axes" inside a positional key.
var Ellipsis EllipsisType

func (EllipsisType) String() string { return "..." }

// AsInteger reports whether k is an integer term and returns its value.
// Every Go integer kind and tensor.Pick qualify.
func AsInteger(k any) (int, bool) {
	if p, ok := k.(tensor.Pick); ok {
		return int(p), true
	}
	i, ok := tensor.ToInt64(k)
	return int(i), ok
}

// IsBasic reports whether k is a term a BasicIndexer accepts: an integer
// or a slice. Slice bounds are not inspected.
func IsBasic(k any) bool {
	switch k.(type) {
	case Slice, tensor.Span:
		return true
	}
	_, ok := AsInteger(k)
	return ok
}
