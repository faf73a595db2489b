package tensor

// Shaped is implemented by anything with a shape.
type Shaped interface {
	Shape() Shape
}

// Tensor is the capability set a multidimensional container must offer to
// be wrapped by a labeled array.
//
// Implementations:
//   - RawTensor: dense strided buffer (DenseBackend)
//   - arrowtensor.Tensor: immutable Arrow label arrays
type Tensor interface {
	Shaped

	// DType returns the element type.
	DType() DataType

	// At returns the element at the given indices, one per axis.
	At(indices ...int) (any, error)

	// Backend names the implementation; index adapters are registered by it.
	Backend() string
}

// Indexable is a Tensor with native positional indexing.
//
// Index follows the rules documented on RawTensor.Index: it may return a
// bare element when every axis is picked and no Rest marker is present.
type Indexable interface {
	Tensor
	Index(sel ...Selector) (any, error)
	SetIndex(value any, sel ...Selector) error

	// Writeable reports whether SetIndex may succeed at all.
	Writeable() bool

	// OwnsData is false for views onto storage owned by something else.
	OwnsData() bool
}

// NDim returns the number of axes of s.
func NDim(s Shaped) int {
	return len(s.Shape())
}

// Size returns the number of elements of s.
func Size(s Shaped) int {
	return s.Shape().NumElements()
}

// Len returns the length of the first axis of s.
func Len(s Shaped) (int, error) {
	shape := s.Shape()
	if len(shape) == 0 {
		return 0, ErrUnsized
	}
	return shape[0], nil
}
