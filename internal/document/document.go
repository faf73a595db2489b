// Package document reads labeled arrays from YAML (or JSON) documents and
// parses the index terms the command line accepts.
//
// A document looks like:
//
//	name: temperature
//	dims: [x, y]
//	dtype: float64
//	data: [[1, 2, 3], [4, 5, 6]]
//	coords:
//	  x: [a, b]
//	  y: [10, 20, 30]
//	attrs:
//	  units: K
//
// data may be nested or flat; a flat list needs shape.
package document

import (
	"io"
	"os"

	"github.com/born-ml/warray/internal/arrowtensor"
	"github.com/born-ml/warray/internal/dataarray"
	"github.com/born-ml/warray/internal/tensor"
	"github.com/born-ml/warray/internal/variable"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument reports a document that does not describe an array.
var ErrInvalidDocument = errors.New("invalid array document")

// Document is the decoded form of an array document.
type Document struct {
	Name   string         `yaml:"name"`
	Dims   []string       `yaml:"dims"`
	Shape  []int          `yaml:"shape"`
	DType  string         `yaml:"dtype"`
	Data   any            `yaml:"data"`
	Coords yaml.Node      `yaml:"coords"`
	Attrs  map[string]any `yaml:"attrs"`
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return doc, nil
}

// Decode reads one document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidDocument, "empty document")
		}
		return nil, errors.Wrap(err, "decoding array document")
	}
	return &doc, nil
}

// DataArray builds the array the document describes.
func (d *Document) DataArray() (*dataarray.DataArray, error) {
	data, err := d.tensor()
	if err != nil {
		return nil, err
	}
	coords, err := d.coords()
	if err != nil {
		return nil, err
	}

	opts := []dataarray.Option{dataarray.WithName(d.Name), dataarray.WithAttrs(d.Attrs)}
	if d.Dims != nil {
		opts = append(opts, dataarray.WithDims(d.Dims...))
	}
	if coords != nil {
		opts = append(opts, dataarray.WithNamedCoords(coords...))
	}
	return dataarray.New(data, opts...)
}

// coords decodes the coords mapping, keeping the document's order.
func (d *Document) coords() ([]dataarray.Coord, error) {
	n := d.Coords
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrInvalidDocument, "coords must be a mapping (line %d)", n.Line)
	}
	out := make([]dataarray.Coord, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		var values []any
		if err := val.Decode(&values); err != nil {
			return nil, errors.Wrapf(ErrInvalidDocument, "coordinate %q (line %d) must be a list: %v", key.Value, val.Line, err)
		}
		out = append(out, dataarray.Coord{Name: key.Value, Value: values})
	}
	return out, nil
}

// tensor flattens data and builds a tensor of the requested dtype, or of
// the type inferred from the values when no dtype is given.
func (d *Document) tensor() (tensor.Tensor, error) {
	if d.Data == nil {
		return nil, errors.Wrap(ErrInvalidDocument, "missing data")
	}
	flat, nested, err := flatten(d.Data)
	if err != nil {
		return nil, err
	}
	shape := tensor.Shape(d.Shape)
	if shape == nil {
		shape = nested
	}
	if shape.NumElements() != len(flat) {
		return nil, errors.Wrapf(ErrInvalidDocument,
			"shape %s needs %d values, data has %d", shape, shape.NumElements(), len(flat))
	}

	if d.DType == "" {
		t, err := variable.AsCompatibleData(flat)
		if err != nil {
			return nil, err
		}
		if len(shape) == 1 {
			return t, nil
		}
		return fill(t.DType(), flat, shape)
	}

	dt, ok := tensor.ParseDataType(d.DType)
	if !ok {
		return nil, errors.Wrapf(tensor.ErrUnsupportedDType, "dtype %q", d.DType)
	}
	return fill(dt, flat, shape)
}

// flatten returns the scalars of a possibly nested list in row-major order
// together with the shape the nesting implies.
func flatten(data any) ([]any, tensor.Shape, error) {
	list, ok := data.([]any)
	if !ok {
		return []any{data}, tensor.Shape{}, nil
	}
	var (
		flat  []any
		inner tensor.Shape
	)
	for i, item := range list {
		f, s, err := flatten(item)
		if err != nil {
			return nil, nil, err
		}
		if i > 0 && !s.Equal(inner) {
			return nil, nil, errors.Wrapf(ErrInvalidDocument,
				"ragged data: element %d has shape %s, element 0 has %s", i, s, inner)
		}
		inner = s
		flat = append(flat, f...)
	}
	return flat, append(tensor.Shape{len(list)}, inner...), nil
}

// fill builds a tensor of type dt and the given shape from flat values.
func fill(dt tensor.DataType, flat []any, shape tensor.Shape) (tensor.Tensor, error) {
	if dt == tensor.String {
		if len(shape) != 1 {
			return nil, errors.Wrapf(ErrInvalidDocument, "string data must be 1-D, got shape %s", shape)
		}
		strs := make([]string, len(flat))
		for i, v := range flat {
			s, ok := v.(string)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidDocument, "element %d (%v) is not a string", i, v)
			}
			strs[i] = s
		}
		return arrowtensor.FromStrings(strs), nil
	}

	raw, err := tensor.NewRaw(shape, dt)
	if err != nil {
		return nil, err
	}
	strides := shape.ComputeStrides()
	sel := make([]tensor.Selector, len(shape))
	for i, v := range flat {
		rem := i
		for axis, st := range strides {
			sel[axis] = tensor.Pick(rem / st)
			rem %= st
		}
		if err := raw.SetIndex(v, sel...); err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
	}
	return raw, nil
}
