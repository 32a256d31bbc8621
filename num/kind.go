package num

import "fmt"

// Kind identifies a numeric variant: its width, signedness, and floatness.
// The kind fully determines how many bytes a Reader consumes and how the
// decoded value is interpreted.
type Kind uint8

const (
	U8 Kind = iota
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
	F32
	F64
)

var kindNames = map[Kind]string{
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	U128: "u128",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	I128: "i128",
	F32:  "f32",
	F64:  "f64",
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Size returns the byte width the kind occupies on the wire.
func (k Kind) Size() int {
	switch k {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	case U128, I128:
		return 16
	default:
		return 0
	}
}

// Bits returns the bit width of the kind.
func (k Kind) Bits() int {
	return k.Size() * 8
}

// Signed reports whether the kind is a two's-complement integer.
func (k Kind) Signed() bool {
	switch k {
	case I8, I16, I32, I64, I128:
		return true
	default:
		return false
	}
}

// Float reports whether the kind is an IEEE-754 floating-point value.
func (k Kind) Float() bool {
	return k == F32 || k == F64
}

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_KIND_%d", uint8(k))
}

// ParseKind converts a lowercase kind name ("u8" through "f64") into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
