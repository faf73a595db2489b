package indexing

import (
	"testing"

	"github.com/born-ml/warray/internal/tensor"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(t *testing.T, rows, cols int) *tensor.RawTensor {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}
	raw, err := tensor.FromSlice(data, tensor.Shape{rows, cols})
	require.NoError(t, err)
	return raw
}

func basic(t *testing.T, key ...any) BasicIndexer {
	t.Helper()
	b, err := NewBasicIndexer(key)
	require.NoError(t, err)
	return b
}

func TestNativeAdapter_GetAlwaysTensor(t *testing.T) {
	a, err := NewNativeAdapter(arange(t, 4, 3))
	require.NoError(t, err)

	out, err := a.Get(basic(t, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{}, out.Shape())

	v, err := out.At()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestNativeAdapter_GetSlices(t *testing.T) {
	a, err := NewNativeAdapter(arange(t, 4, 3))
	require.NoError(t, err)

	out, err := a.Get(basic(t, S(1, 3), 0))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, out.Shape())

	vals, err := tensor.Values[float64](out)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, vals)
}

func TestNativeAdapter_GetOutOfRange(t *testing.T) {
	a, err := NewNativeAdapter(arange(t, 4, 3))
	require.NoError(t, err)

	_, err = a.Get(basic(t, 4, All))
	assert.True(t, errors.Is(err, tensor.ErrIndexOutOfRange))
}

func TestNativeAdapter_Set(t *testing.T) {
	raw := arange(t, 2, 2)
	a, err := NewNativeAdapter(raw)
	require.NoError(t, err)

	require.NoError(t, a.Set(basic(t, 0, All), 9.0))

	vals, err := tensor.Values[float64](raw)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9, 2, 3}, vals)
}

func TestNativeAdapter_SetReadOnlyView(t *testing.T) {
	a, err := NewNativeAdapter(arange(t, 2, 2).ReadOnly())
	require.NoError(t, err)

	err = a.Set(basic(t, 0, 0), 1.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadOnlyDestination))
	assert.Contains(t, errors.FlattenHints(err), "copy the data first")
}

func TestNativeAdapter_SetOtherFailure(t *testing.T) {
	a, err := NewNativeAdapter(arange(t, 2, 2))
	require.NoError(t, err)

	err = a.Set(basic(t, 0, 0), "text")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrReadOnlyDestination))
	assert.True(t, errors.Is(err, tensor.ErrInvalidConversion))
}

type opaque struct{}

func (opaque) Shape() tensor.Shape { return tensor.Shape{1} }
func (opaque) DType() tensor.DataType { return tensor.Float64 }
func (opaque) At(...int) (any, error) { return 0.0, nil }
func (opaque) Backend() string { return "opaque" }

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{tensor.DenseBackend}, reg.Backends())

	a, err := reg.Adapter(arange(t, 1, 1))
	require.NoError(t, err)
	assert.IsType(t, &NativeAdapter{}, a)

	_, err = reg.Adapter(opaque{})
	assert.True(t, errors.Is(err, ErrNoAdapter))

	reg.Register("opaque", NewNativeAdapter)
	assert.Equal(t, []string{tensor.DenseBackend, "opaque"}, reg.Backends())

	_, err = reg.Adapter(opaque{})
	assert.True(t, errors.Is(err, ErrNotIndexable))
}
