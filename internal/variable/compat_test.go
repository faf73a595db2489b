package variable

import (
	"testing"

	"github.com/born-ml/warray/internal/arrowtensor"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsVariable(t *testing.T) {
	t.Run("variable is copied", func(t *testing.T) {
		v := grid(t)
		c, err := AsVariable(v, "ignored")
		require.NoError(t, err)
		assert.NotSame(t, v, c)
		assert.Same(t, v.Data(), c.Data())
		assert.Equal(t, v.Dims(), c.Dims())
	})

	t.Run("spec", func(t *testing.T) {
		v, err := AsVariable(Spec{Dims: []string{"t"}, Data: []float64{1, 2}, Attrs: map[string]any{"a": 1}}, "time")
		require.NoError(t, err)
		assert.Equal(t, []string{"t"}, v.Dims())
		assert.Equal(t, map[string]any{"a": 1}, v.Attrs())
	})

	t.Run("bad spec names the variable", func(t *testing.T) {
		_, err := AsVariable(Spec{Dims: []string{"a", "b"}, Data: []float64{1, 2}}, "time")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDimsMismatch))
		assert.Contains(t, err.Error(), `variable "time"`)
	})

	t.Run("named 1-D data", func(t *testing.T) {
		v, err := AsVariable([]string{"a", "b", "c"}, "letters")
		require.NoError(t, err)
		assert.Equal(t, []string{"letters"}, v.Dims())
		assert.Equal(t, arrowtensor.Backend, v.Data().Backend())
	})

	t.Run("named 2-D data", func(t *testing.T) {
		_, err := AsVariable([][]float64{{1, 2}, {3, 4}}, "m")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoDims))
		assert.Contains(t, errors.FlattenHints(err), "Spec{Dims, Data}")
	})

	t.Run("no name", func(t *testing.T) {
		_, err := AsVariable([]float64{1}, "")
		assert.True(t, errors.Is(err, ErrNoDims))
	})
}

func TestAsCompatibleData(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		shape tensor.Shape
		dtype tensor.DataType
	}{
		{"float64s", []float64{1, 2}, tensor.Shape{2}, tensor.Float64},
		{"ints widen", []int{1, 2, 3}, tensor.Shape{3}, tensor.Int64},
		{"bools", []bool{true}, tensor.Shape{1}, tensor.Bool},
		{"strings", []string{"a"}, tensor.Shape{1}, tensor.String},
		{"matrix", [][]int{{1, 2, 3}, {4, 5, 6}}, tensor.Shape{2, 3}, tensor.Int64},
		{"float scalar", 2.5, tensor.Shape{}, tensor.Float64},
		{"int scalar", 7, tensor.Shape{}, tensor.Int64},
		{"string scalar", "s", tensor.Shape{}, tensor.String},
		{"any ints", []any{1, int64(2)}, tensor.Shape{2}, tensor.Int64},
		{"any numbers", []any{1, 2.5}, tensor.Shape{2}, tensor.Float64},
		{"any strings", []any{"a", "b"}, tensor.Shape{2}, tensor.String},
		{"any empty", []any{}, tensor.Shape{0}, tensor.Float64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsCompatibleData(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, got.Shape())
			assert.Equal(t, tt.dtype, got.DType())
		})
	}
}

func TestAsCompatibleData_PassThrough(t *testing.T) {
	raw := tensor.Scalar(1.0)
	got, err := AsCompatibleData(raw)
	require.NoError(t, err)
	assert.Same(t, raw, got)

	v := grid(t)
	got, err = AsCompatibleData(v)
	require.NoError(t, err)
	assert.Same(t, v.Data(), got)
}

func TestAsCompatibleData_Rejects(t *testing.T) {
	for name, in := range map[string]any{
		"nil":    nil,
		"map":    map[string]int{},
		"mixed":  []any{"a", 1},
		"ragged": [][]float64{{1}, {2, 3}},
		"nested": []any{[]int{1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := AsCompatibleData(in)
			assert.True(t, errors.Is(err, ErrUnsupportedData))
		})
	}
}
