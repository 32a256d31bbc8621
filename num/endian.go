package num

import "fmt"

// Endian selects the byte order used to decode or re-encode a value.
type Endian uint8

const (
	// Little treats the first byte as least significant.
	Little Endian = iota
	// Big treats the first byte as most significant.
	Big
)

// String implements the Stringer interface for Endian.
func (e Endian) String() string {
	switch e {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("UNKNOWN_ENDIAN_%d", uint8(e))
	}
}

// ParseEndian converts "little" or "big" into an Endian.
func ParseEndian(s string) (Endian, error) {
	switch s {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	default:
		return Little, fmt.Errorf("num: unknown endianness %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Endian) MarshalText() ([]byte, error) {
	if e != Little && e != Big {
		return nil, fmt.Errorf("num: unknown endianness %d", uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Endian) UnmarshalText(text []byte) error {
	parsed, err := ParseEndian(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
