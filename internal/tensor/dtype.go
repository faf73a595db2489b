// Package tensor provides the backing tensors that labeled arrays wrap: the
// Tensor capability set, the dense RawTensor and its native positional
// indexing.
package tensor

// DType is a constraint for data types a dense tensor can store.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	// String is only carried by label tensors (see arrowtensor); dense
	// tensors cannot hold it.
	String
)

// Size returns the byte size of the data type.
// String is variable-width and reports 0.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	case String:
		return 0
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// ParseDataType is the inverse of DataType.String.
func ParseDataType(name string) (DataType, bool) {
	for dt := Float32; dt <= String; dt++ {
		if dt.String() == name {
			return dt, true
		}
	}
	return 0, false
}

// Dense reports whether a RawTensor can store the data type.
func (dt DataType) Dense() bool {
	return dt >= Float32 && dt <= Bool
}

// IsInteger reports whether the data type is a signed or unsigned integer.
func (dt DataType) IsInteger() bool {
	return dt == Int32 || dt == Int64 || dt == Uint8
}

// IsFloat reports whether the data type is floating point.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
