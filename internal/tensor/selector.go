package tensor

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// OptInt is an integer that may be absent, like an omitted slice bound.
type OptInt struct {
	Value int
	Valid bool
}

// Some returns a present OptInt.
func Some(v int) OptInt {
	return OptInt{Value: v, Valid: true}
}

// None is the absent OptInt.
var None = OptInt{}

func (o OptInt) String() string {
	if !o.Valid {
		return "None"
	}
	return fmt.Sprint(o.Value)
}

// Selector is one term of a native positional index. The set of selectors
// is closed: Pick, Span and Rest.
type Selector interface {
	selector()
}

// Pick selects a single position along an axis and drops the axis.
// Negative values count from the end.
type Pick int

// Span selects a strided range along an axis and keeps the axis.
// Absent bounds default to the whole axis in the direction of Step.
type Span struct {
	Start, Stop, Step OptInt
}

// Rest selects everything along all axes not consumed by other selectors.
type Rest struct{}

func (Pick) selector() {}
func (Span) selector() {}
func (Rest) selector() {}

// FullSpan selects a whole axis.
var FullSpan = Span{}

func (s Span) String() string {
	return fmt.Sprintf("slice(%s, %s, %s)", s.Start, s.Stop, s.Step)
}

// Indices resolves the span against an axis of length n and returns the
// first position, the step and the number of selected positions.
func (s Span) Indices(n int) (start, step, length int, err error) {
	step = 1
	if s.Step.Valid {
		step = s.Step.Value
		if step == 0 {
			return 0, 0, 0, ErrZeroStep
		}
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	start = clampBound(s.Start, n, lower, upper, step < 0)
	stop := clampBound(s.Stop, n, lower, upper, step > 0)

	switch {
	case step > 0 && stop > start:
		length = (stop-start-1)/step + 1
	case step < 0 && start > stop:
		length = (start-stop-1)/(-step) + 1
	}
	return start, step, length, nil
}

// clampBound normalises one slice bound. An absent bound resolves to upper
// when useUpper is set and to lower otherwise.
func clampBound(b OptInt, n, lower, upper int, useUpper bool) int {
	if !b.Valid {
		if useUpper {
			return upper
		}
		return lower
	}
	v := b.Value
	if v < 0 {
		v += n
		if v < lower {
			v = lower
		}
	} else if v > upper {
		v = upper
	}
	return v
}

// Resolve normalises a (possibly negative) position along axis number axis
// of length n.
func (p Pick) Resolve(axis, n int) (int, error) {
	i := int(p)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errors.Wrapf(ErrIndexOutOfRange,
			"index %d is out of bounds for axis %d with size %d", int(p), axis, n)
	}
	return i, nil
}
