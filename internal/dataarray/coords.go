package dataarray

import (
	"iter"
	"slices"
	"strings"

	"github.com/born-ml/warray/internal/variable"
)

// Coordinates is an ordered mapping from coordinate names to variables.
// It is filled once when a DataArray is built and never changed after.
type Coordinates struct {
	names []string
	vars  map[string]*variable.Variable
}

func newCoordinates() *Coordinates {
	return &Coordinates{vars: make(map[string]*variable.Variable)}
}

func (c *Coordinates) set(name string, v *variable.Variable) {
	if _, ok := c.vars[name]; !ok {
		c.names = append(c.names, name)
	}
	c.vars[name] = v
}

// Get returns the coordinate called name.
func (c *Coordinates) Get(name string) (*variable.Variable, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Names returns the coordinate names in insertion order.
func (c *Coordinates) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of coordinates.
func (c *Coordinates) Len() int {
	return len(c.names)
}

// All iterates over the coordinates in insertion order.
func (c *Coordinates) All() iter.Seq2[string, *variable.Variable] {
	return func(yield func(string, *variable.Variable) bool) {
		for _, name := range c.names {
			if !yield(name, c.vars[name]) {
				return
			}
		}
	}
}

func (c *Coordinates) String() string {
	parts := make([]string, len(c.names))
	for i, name := range c.names {
		parts[i] = name + ": " + c.vars[name].String()
	}
	return "Coordinates{" + strings.Join(parts, ", ") + "}"
}
