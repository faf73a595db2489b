package tensor

import (
	"testing"

	"github.com/cockroachdb/errors"
)

// TestSpanIndices checks bound wrapping, clamping and step defaults.
func TestSpanIndices(t *testing.T) {
	tests := []struct {
		name       string
		span       Span
		n          int
		start      int
		step       int
		length     int
	}{
		{"full", FullSpan, 5, 0, 1, 5},
		{"prefix", Span{Stop: Some(2)}, 5, 0, 1, 2},
		{"middle", Span{Start: Some(1), Stop: Some(4)}, 5, 1, 1, 3},
		{"negative start", Span{Start: Some(-2)}, 5, 3, 1, 2},
		{"negative stop", Span{Stop: Some(-1)}, 5, 0, 1, 4},
		{"stop past end clamps", Span{Start: Some(2), Stop: Some(100)}, 5, 2, 1, 3},
		{"start before begin clamps", Span{Start: Some(-100)}, 5, 0, 1, 5},
		{"empty", Span{Start: Some(3), Stop: Some(1)}, 5, 3, 1, 0},
		{"stepped", Span{Step: Some(2)}, 5, 0, 2, 3},
		{"reversed", Span{Step: Some(-1)}, 5, 4, -1, 5},
		{"reversed window", Span{Start: Some(3), Stop: Some(0), Step: Some(-2)}, 5, 3, -2, 2},
		{"reversed negative stop", Span{Stop: Some(-6), Step: Some(-1)}, 5, 4, -1, 5},
		{"zero length axis", FullSpan, 0, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, step, length, err := tt.span.Indices(tt.n)
			if err != nil {
				t.Fatalf("Indices failed: %v", err)
			}
			if length != tt.length || step != tt.step {
				t.Errorf("Indices(%d) = (start %d, step %d, len %d), want (start %d, step %d, len %d)",
					tt.n, start, step, length, tt.start, tt.step, tt.length)
			}
			if length > 0 && start != tt.start {
				t.Errorf("start = %d, want %d", start, tt.start)
			}
		})
	}
}

func TestSpanZeroStep(t *testing.T) {
	_, _, _, err := Span{Step: Some(0)}.Indices(3)
	if !errors.Is(err, ErrZeroStep) {
		t.Errorf("got %v, want ErrZeroStep", err)
	}
}

func TestSpanString(t *testing.T) {
	s := Span{Start: Some(1), Step: Some(-1)}
	if got := s.String(); got != "slice(1, None, -1)" {
		t.Errorf("String() = %q", got)
	}
}
