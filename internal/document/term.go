package document

import (
	"strconv"
	"strings"

	"github.com/born-ml/warray/internal/indexing"
	"github.com/cockroachdb/errors"
)

// ParseTerm parses a command-line index term: an integer ("3", "-1") or a
// slice in start:stop[:step] form with optional bounds ("1:3", "::2", ":").
func ParseTerm(s string) (any, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(indexing.ErrInvalidTerm, "%q is not an integer or a slice", s)
		}
		return i, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return nil, errors.Wrapf(indexing.ErrInvalidTerm, "%q has more than three slice fields", s)
	}
	bounds := make([]any, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(indexing.ErrInvalidTerm, "slice bound %q in %q", p, s)
		}
		bounds[i] = n
	}
	return indexing.Slice{Start: bounds[0], Stop: bounds[1], Step: bounds[2]}, nil
}

// ParseIndexer parses a dim=term assignment.
func ParseIndexer(s string) (string, any, error) {
	dim, term, ok := strings.Cut(s, "=")
	dim = strings.TrimSpace(dim)
	if !ok || dim == "" {
		return "", nil, errors.Wrapf(indexing.ErrInvalidTerm, "%q is not of the form dim=term", s)
	}
	t, err := ParseTerm(term)
	if err != nil {
		return "", nil, errors.Wrapf(err, "dimension %q", dim)
	}
	return dim, t, nil
}

// ParseIndexers parses several dim=term assignments into a request.
func ParseIndexers(specs []string) (map[string]any, error) {
	out := make(map[string]any, len(specs))
	for _, s := range specs {
		dim, term, err := ParseIndexer(s)
		if err != nil {
			return nil, err
		}
		if _, dup := out[dim]; dup {
			return nil, errors.Wrapf(indexing.ErrInvalidTerm, "dimension %q indexed twice", dim)
		}
		out[dim] = term
	}
	return out, nil
}
