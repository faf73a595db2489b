package tensor

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func mustIndex(t *testing.T, r *RawTensor, sel ...Selector) *RawTensor {
	t.Helper()
	out, err := r.Index(sel...)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	v, ok := out.(*RawTensor)
	if !ok {
		t.Fatalf("Index returned %T, want *RawTensor", out)
	}
	return v
}

func mustFloat64s(t *testing.T, tensor Tensor) []float64 {
	t.Helper()
	got, err := Values[float64](tensor)
	if err != nil {
		t.Fatalf("Values failed: %v", err)
	}
	return got
}

func TestIndex(t *testing.T) {
	raw := arange4x3(t)

	tests := []struct {
		name  string
		sel   []Selector
		shape Shape
		want  []float64
	}{
		{"pick row", []Selector{Pick(1)}, Shape{3}, []float64{3, 4, 5}},
		{"pick last row", []Selector{Pick(-1)}, Shape{3}, []float64{9, 10, 11}},
		{"pick column", []Selector{FullSpan, Pick(2)}, Shape{4}, []float64{2, 5, 8, 11}},
		{"span rows", []Selector{Span{Start: Some(1), Stop: Some(3)}}, Shape{2, 3}, []float64{3, 4, 5, 6, 7, 8}},
		{"stepped rows", []Selector{Span{Step: Some(2)}, Pick(0)}, Shape{2}, []float64{0, 6}},
		{"reversed columns", []Selector{Pick(0), Span{Step: Some(-1)}}, Shape{3}, []float64{2, 1, 0}},
		{"empty span", []Selector{Span{Start: Some(2), Stop: Some(2)}}, Shape{0, 3}, []float64{}},
		{"rest keeps trailing axes", []Selector{Pick(3), Rest{}}, Shape{3}, []float64{9, 10, 11}},
		{"rest before pick", []Selector{Rest{}, Pick(0)}, Shape{4}, []float64{0, 3, 6, 9}},
		{"every axis picked with rest", []Selector{Pick(1), Pick(1), Rest{}}, Shape{}, []float64{4}},
		{"no selectors", nil, Shape{4, 3}, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustIndex(t, raw, tt.sel...)
			if !got.Shape().Equal(tt.shape) {
				t.Errorf("shape = %v, want %v", got.Shape(), tt.shape)
			}
			if vals := mustFloat64s(t, got); !sliceEqual(vals, tt.want) {
				t.Errorf("values = %v, want %v", vals, tt.want)
			}
			if got.OwnsData() {
				t.Error("indexing should produce a view")
			}
		})
	}
}

func TestIndexBareElement(t *testing.T) {
	raw := arange4x3(t)
	out, err := raw.Index(Pick(2), Pick(-1))
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if v, ok := out.(float64); !ok || v != 8 {
		t.Errorf("Index(2, -1) = %v (%T), want bare 8", out, out)
	}
}

func TestIndexOfView(t *testing.T) {
	raw := arange4x3(t)
	rows := mustIndex(t, raw, Span{Start: Some(1), Step: Some(2)}) // rows 1, 3
	got := mustIndex(t, rows, Span{Step: Some(-1)}, Pick(1))
	if vals := mustFloat64s(t, got); !sliceEqual(vals, []float64{10, 4}) {
		t.Errorf("values = %v, want [10 4]", vals)
	}
}

func TestIndexErrors(t *testing.T) {
	raw := arange4x3(t)

	tests := []struct {
		name string
		sel  []Selector
		want error
	}{
		{"out of range", []Selector{Pick(4)}, ErrIndexOutOfRange},
		{"negative out of range", []Selector{Pick(-5)}, ErrIndexOutOfRange},
		{"too many", []Selector{Pick(0), Pick(0), Pick(0)}, ErrTooManySelectors},
		{"two rests", []Selector{Rest{}, Rest{}}, ErrMultipleRest},
		{"zero step", []Selector{Span{Step: Some(0)}}, ErrZeroStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := raw.Index(tt.sel...); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetIndexScalar(t *testing.T) {
	raw := arange4x3(t)
	if err := raw.SetIndex(-1, FullSpan, Pick(0)); err != nil {
		t.Fatalf("SetIndex failed: %v", err)
	}
	want := []float64{-1, 1, 2, -1, 4, 5, -1, 7, 8, -1, 10, 11}
	if vals := mustFloat64s(t, raw); !sliceEqual(vals, want) {
		t.Errorf("values = %v, want %v", vals, want)
	}
}

func TestSetIndexTensor(t *testing.T) {
	raw := arange4x3(t)
	row := mustFromSlice(t, []int64{7, 8, 9}, Shape{3})
	if err := raw.SetIndex(row, Pick(0)); err != nil {
		t.Fatalf("SetIndex failed: %v", err)
	}
	if vals := mustFloat64s(t, mustIndex(t, raw, Pick(0))); !sliceEqual(vals, []float64{7, 8, 9}) {
		t.Errorf("row 0 = %v, want [7 8 9]", vals)
	}
}

func TestSetIndexOverlappingSource(t *testing.T) {
	raw := mustFromSlice(t, []int32{1, 2, 3, 4}, Shape{4})
	reversed := mustIndex(t, raw, Span{Step: Some(-1)})
	if err := raw.SetIndex(reversed, FullSpan); err != nil {
		t.Fatalf("SetIndex failed: %v", err)
	}
	got, _ := Values[int32](raw)
	if !sliceEqual(got, []int32{4, 3, 2, 1}) {
		t.Errorf("values = %v, want [4 3 2 1]", got)
	}
}

func TestSetIndexRejectsWithoutWriting(t *testing.T) {
	raw := mustFromSlice(t, []int64{1, 2, 3}, Shape{3})

	bad := mustFromSlice(t, []float64{1, 2, 3}, Shape{3})
	if err := raw.SetIndex(bad, FullSpan); !errors.Is(err, ErrInvalidConversion) {
		t.Errorf("float into int tensor: got %v, want ErrInvalidConversion", err)
	}
	short := mustFromSlice(t, []int64{1, 2}, Shape{2})
	if err := raw.SetIndex(short, FullSpan); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short value: got %v, want ErrShapeMismatch", err)
	}
	if err := raw.SetIndex("x", Pick(0)); !errors.Is(err, ErrInvalidConversion) {
		t.Errorf("string value: got %v, want ErrInvalidConversion", err)
	}

	got, _ := Values[int64](raw)
	if !sliceEqual(got, []int64{1, 2, 3}) {
		t.Errorf("tensor modified by failed assignment: %v", got)
	}
}

func TestSetIndexOnReadOnlyView(t *testing.T) {
	raw := arange4x3(t)
	row := mustIndex(t, raw.ReadOnly(), Pick(0))
	if err := row.SetIndex(0, Pick(0)); !errors.Is(err, ErrNotWriteable) {
		t.Errorf("got %v, want ErrNotWriteable", err)
	}
}
