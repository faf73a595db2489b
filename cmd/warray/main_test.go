package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/indexing"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `name: temperature
dims: [x, y]
data: [[0, 1, 2], [3, 4, 5], [6, 7, 8], [9, 10, 11]]
coords:
  x: [a, b, c, d]
  y: [10, 20, 30]
`

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temperature.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "warray "+version+"\n", out)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", writeDoc(t))
	require.NoError(t, err)
	assert.Contains(t, out, `<warray.DataArray "temperature" (x: 4, y: 3)>`)
	assert.Contains(t, out, "[a b c d]")
	assert.Contains(t, out, "[10 20 30]")
}

func TestIsel(t *testing.T) {
	path := writeDoc(t)

	out, err := run(t, "isel", path, "--index", "x=0")
	require.NoError(t, err)
	assert.Contains(t, out, "(y: 3)")
	assert.Contains(t, out, "[0 1 2]")
	assert.Contains(t, out, "a", "scalar coordinate is kept")

	out, err = run(t, "isel", path, "-i", "x=1:3", "-i", "y=::2")
	require.NoError(t, err)
	assert.Contains(t, out, "(x: 2, y: 2)")
	assert.Contains(t, out, "[b c]")

	out, err = run(t, "isel", path, "-i", "x=-1", "--drop")
	require.NoError(t, err)
	assert.NotContains(t, out, "[a b c d]")
	assert.Contains(t, out, "[9 10 11]")
}

func TestIsel_MissingDims(t *testing.T) {
	path := writeDoc(t)

	_, err := run(t, "isel", path, "-i", "z=0")
	assert.True(t, errors.Is(err, dims.ErrMissingDims))

	out, err := run(t, "isel", path, "-i", "z=0", "--missing-dims", "ignore")
	require.NoError(t, err)
	assert.Contains(t, out, "(x: 4, y: 3)")

	t.Setenv("WARRAY_ISEL_MISSING_DIMS", "warn")
	_, err = run(t, "isel", path, "-i", "z=0")
	assert.NoError(t, err)

	_, err = run(t, "isel", path, "-i", "z=0", "--missing-dims", "loud")
	assert.True(t, errors.Is(err, dims.ErrInvalidPolicy))
}

func TestIsel_BadTerm(t *testing.T) {
	_, err := run(t, "isel", writeDoc(t), "-i", "x=first")
	assert.True(t, errors.Is(err, indexing.ErrInvalidTerm))
}

func TestInfo_MissingFile(t *testing.T) {
	_, err := run(t, "info", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
