package variable

import (
	"testing"

	"github.com/born-ml/warray/internal/arrowtensor"
	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid returns a 4x3 variable on (x, y) holding 0..11.
func grid(t *testing.T) *Variable {
	t.Helper()
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	raw, err := tensor.FromSlice(data, tensor.Shape{4, 3})
	require.NoError(t, err)
	v, err := New([]string{"x", "y"}, raw, map[string]any{"units": "m"})
	require.NoError(t, err)
	return v
}

func values(t *testing.T, v *Variable) []float64 {
	t.Helper()
	out, err := tensor.Values[float64](v.Data())
	require.NoError(t, err)
	return out
}

func TestNew(t *testing.T) {
	v := grid(t)
	assert.Equal(t, []string{"x", "y"}, v.Dims())
	assert.Equal(t, tensor.Shape{4, 3}, v.Shape())
	assert.Equal(t, 2, v.NDim())
	assert.Equal(t, 12, v.Size())
	assert.Equal(t, 96, v.NBytes())
	assert.Equal(t, tensor.Float64, v.DType())
	assert.Equal(t, map[string]any{"units": "m"}, v.Attrs())
	assert.Equal(t, dims.Sizes{{Dim: "x", Size: 4}, {Dim: "y", Size: 3}}, v.Sizes())
	assert.Equal(t, "<Variable (x, y) float64>", v.String())

	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNew_Rejects(t *testing.T) {
	raw, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	_, err = New([]string{"x", "y"}, raw, nil)
	assert.True(t, errors.Is(err, ErrDimsMismatch))
	assert.Contains(t, err.Error(), "ndim=1")

	_, err = New([]string{""}, raw, nil)
	assert.True(t, errors.Is(err, ErrInvalidDim))

	_, err = New(nil, nil, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedData))
}

func TestAccessorsReturnCopies(t *testing.T) {
	v := grid(t)

	d := v.Dims()
	d[0] = "changed"
	assert.Equal(t, []string{"x", "y"}, v.Dims())

	a := v.Attrs()
	a["units"] = "ft"
	assert.Equal(t, "m", v.Attrs()["units"])
}

func TestAxisNum(t *testing.T) {
	v := grid(t)
	n, err := v.AxisNum("y")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	nums, err := v.AxisNums("y", "x")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, nums)

	raw, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float64)
	require.NoError(t, err)
	dup, err := New([]string{"x", "x"}, raw, nil)
	require.NoError(t, err, "duplicates are accepted at construction")

	_, err = dup.AxisNum("x")
	assert.True(t, errors.Is(err, dims.ErrDuplicateDims))
}

func TestSetData(t *testing.T) {
	v := grid(t)

	replacement, err := tensor.NewRaw(tensor.Shape{4, 3}, tensor.Float64)
	require.NoError(t, err)
	require.NoError(t, v.SetData(replacement))
	assert.Same(t, replacement, v.Data())

	wrong, err := tensor.NewRaw(tensor.Shape{3, 4}, tensor.Float64)
	require.NoError(t, err)
	err = v.SetData(wrong)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Contains(t, err.Error(), "(3, 4)")
	assert.Contains(t, err.Error(), "(4, 3)")
	assert.Same(t, replacement, v.Data(), "failed SetData must not change the variable")
}

func TestLenOfScalar(t *testing.T) {
	v, err := New(nil, tensor.Scalar(1.0), nil)
	require.NoError(t, err)

	_, err = v.Len()
	assert.True(t, errors.Is(err, tensor.ErrUnsized))

	var errs []error
	for item, err := range v.Iter() {
		assert.Nil(t, item)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], tensor.ErrUnsized))
}

func TestIter(t *testing.T) {
	v := grid(t)
	var rows [][]float64
	for row, err := range v.Iter() {
		require.NoError(t, err)
		assert.Equal(t, []string{"y"}, row.Dims())
		rows = append(rows, values(t, row))
	}
	assert.Equal(t, [][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}}, rows)
}

func TestValues(t *testing.T) {
	labels, err := New([]string{"x"}, arrowtensor.FromInt64s([]int64{3, 1, 2}), nil)
	require.NoError(t, err)

	raw, err := labels.Values()
	require.NoError(t, err)
	assert.Equal(t, tensor.DenseBackend, raw.Backend())

	got, err := tensor.Values[int64](raw)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, got)
}

func TestValues_Strings(t *testing.T) {
	letters, err := AsVariable([]string{"a", "b", "c", "d"}, "x")
	require.NoError(t, err)

	tail, err := letters.Isel(map[string]any{"x": indexing.S(nil, nil, -2)})
	require.NoError(t, err)

	out, err := tail.Values()
	require.NoError(t, err)
	assert.Equal(t, tensor.String, out.DType())
	assert.Equal(t, tensor.Shape{2}, out.Shape())
	for i, want := range []string{"d", "b"} {
		got, err := out.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 10, tail.NBytes())
}

// unindexable reports a backend no adapter is registered for.
type unindexable struct{ n int }

func (u unindexable) Shape() tensor.Shape    { return tensor.Shape{u.n} }
func (u unindexable) DType() tensor.DataType { return tensor.Float64 }
func (u unindexable) Backend() string        { return "unindexable" }
func (u unindexable) At(...int) (any, error) { return 0.0, nil }

func TestIter_ReportsIndexError(t *testing.T) {
	v, err := New([]string{"x"}, unindexable{n: 3}, nil)
	require.NoError(t, err)

	var (
		items int
		errs  []error
	)
	for item, err := range v.Iter() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		assert.NotNil(t, item)
		items++
	}
	assert.Zero(t, items)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], indexing.ErrNoAdapter))
	assert.Contains(t, errs[0].Error(), "item 0")
}

func TestSetDims(t *testing.T) {
	v := grid(t)
	require.NoError(t, v.SetDims("row", "col"))
	assert.Equal(t, []string{"row", "col"}, v.Dims())

	err := v.SetDims("only")
	assert.True(t, errors.Is(err, ErrDimsMismatch))
	assert.Equal(t, []string{"row", "col"}, v.Dims())
}
