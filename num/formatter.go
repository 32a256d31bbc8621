package num

import (
	"fmt"
	"strings"
)

// Format tags the closed set of rendering variants.
type Format uint8

const (
	FormatDefault Format = iota
	FormatHex
	FormatOctal
	FormatBinary
	FormatDecimal
	FormatScientific
)

var formatNames = map[Format]string{
	FormatDefault:    "default",
	FormatHex:        "hex",
	FormatOctal:      "octal",
	FormatBinary:     "binary",
	FormatDecimal:    "decimal",
	FormatScientific: "scientific",
}

// String implements the Stringer interface for Format.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_FORMAT_%d", uint8(f))
}

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if _, ok := formatNames[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Formatter renders a Number into human-readable text. Formatters are pure
// configuration: immutable, serializable via FormatterConfig, and reusable
// across any number of renders. Rendering never mutates the number and
// never silently substitutes a fallback representation.
type Formatter interface {
	// Render produces the textual form of n, or an error when the variant
	// does not support the number's kind (ErrUnsupported).
	Render(n Number) (string, error)

	// Format returns the variant tag.
	Format() Format
}

// Grouping inserts a separator between fixed-size digit groups, counted
// from the least significant digit. The zero value disables grouping.
type Grouping struct {
	Sep  string `json:"sep,omitempty"`
	Size int    `json:"size,omitempty"`
}

// enabled reports whether the grouping has any effect.
func (g Grouping) enabled() bool {
	return g.Sep != "" && g.Size > 0
}

// apply inserts the separator into a bare digit string.
func (g Grouping) apply(digits string) string {
	if !g.enabled() || len(digits) <= g.Size {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % g.Size
	if lead == 0 {
		lead = g.Size
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += g.Size {
		b.WriteString(g.Sep)
		b.WriteString(digits[i : i+g.Size])
	}
	return b.String()
}

// SignMode controls how a decimal rendering displays the sign.
type SignMode uint8

const (
	// SignNegativeOnly shows a minus sign on negative values only.
	SignNegativeOnly SignMode = iota
	// SignAlways shows an explicit sign on every value.
	SignAlways
)

// String implements the Stringer interface for SignMode.
func (m SignMode) String() string {
	switch m {
	case SignNegativeOnly:
		return "auto"
	case SignAlways:
		return "always"
	default:
		return fmt.Sprintf("UNKNOWN_SIGN_%d", uint8(m))
	}
}

// ParseSignMode converts "auto" or "always" into a SignMode.
func ParseSignMode(s string) (SignMode, error) {
	switch s {
	case "auto", "":
		return SignNegativeOnly, nil
	case "always":
		return SignAlways, nil
	default:
		return 0, fmt.Errorf("num: unknown sign mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SignMode) MarshalText() ([]byte, error) {
	if m != SignNegativeOnly && m != SignAlways {
		return nil, fmt.Errorf("num: unknown sign mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SignMode) UnmarshalText(text []byte) error {
	parsed, err := ParseSignMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// padWidth returns the digit count that represents a full w-byte value in
// the given base: 2 digits per byte for hex, 8 for binary, and ceil(8w/3)
// for octal.
func padWidth(base, w int) int {
	switch base {
	case 16:
		return 2 * w
	case 8:
		return (8*w + 2) / 3
	case 2:
		return 8 * w
	default:
		return 0
	}
}

// renderBits renders the width-truncated two's-complement bit pattern of an
// integer Number in the given base. Float kinds are rejected: these bases
// are defined only over integer bit patterns.
func renderBits(n Number, base int, padded, uppercase bool) (string, error) {
	if n.Float() {
		return "", fmt.Errorf("%w: cannot render %s as base %d", ErrUnsupported, n.Kind(), base)
	}
	w := n.Size()
	s := n.bits.Trunc(w).BigInt().Text(base)
	if pad := padWidth(base, w); padded && len(s) < pad {
		s = strings.Repeat("0", pad-len(s)) + s
	}
	if uppercase {
		s = strings.ToUpper(s)
	}
	return s, nil
}

// FormatterConfig is the flat, serializable record of any formatter variant:
// the format tag plus the union of all option fields. It is the stable
// representation used when formatter configurations are persisted.
type FormatterConfig struct {
	Format       Format   `json:"format"`
	Uppercase    bool     `json:"uppercase,omitempty"`
	Prefix       bool     `json:"prefix,omitempty"`
	ZeroPad      bool     `json:"zero_pad,omitempty"`
	Group        Grouping `json:"group,omitzero"`
	ThousandsSep string   `json:"thousands_sep,omitempty"`
	Sign         SignMode `json:"sign,omitempty"`
	Precision    int      `json:"precision,omitempty"`
}

// Formatter builds the formatter variant the config describes.
func (c FormatterConfig) Formatter() (Formatter, error) {
	switch c.Format {
	case FormatDefault:
		return DefaultFormatter{}, nil
	case FormatHex:
		return HexFormatter{Uppercase: c.Uppercase, Prefix: c.Prefix, ZeroPad: c.ZeroPad, Group: c.Group}, nil
	case FormatOctal:
		return OctalFormatter{Uppercase: c.Uppercase, Prefix: c.Prefix, ZeroPad: c.ZeroPad, Group: c.Group}, nil
	case FormatBinary:
		return BinaryFormatter{Uppercase: c.Uppercase, Prefix: c.Prefix, ZeroPad: c.ZeroPad, Group: c.Group}, nil
	case FormatDecimal:
		return DecimalFormatter{ThousandsSep: c.ThousandsSep, Sign: c.Sign}, nil
	case FormatScientific:
		return ScientificFormatter{Uppercase: c.Uppercase, Precision: c.Precision}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(c.Format))
	}
}

// ConfigOf returns the serializable record for a formatter variant.
func ConfigOf(f Formatter) (FormatterConfig, error) {
	switch v := f.(type) {
	case DefaultFormatter:
		return FormatterConfig{Format: FormatDefault}, nil
	case HexFormatter:
		return FormatterConfig{Format: FormatHex, Uppercase: v.Uppercase, Prefix: v.Prefix, ZeroPad: v.ZeroPad, Group: v.Group}, nil
	case OctalFormatter:
		return FormatterConfig{Format: FormatOctal, Uppercase: v.Uppercase, Prefix: v.Prefix, ZeroPad: v.ZeroPad, Group: v.Group}, nil
	case BinaryFormatter:
		return FormatterConfig{Format: FormatBinary, Uppercase: v.Uppercase, Prefix: v.Prefix, ZeroPad: v.ZeroPad, Group: v.Group}, nil
	case DecimalFormatter:
		return FormatterConfig{Format: FormatDecimal, ThousandsSep: v.ThousandsSep, Sign: v.Sign}, nil
	case ScientificFormatter:
		return FormatterConfig{Format: FormatScientific, Uppercase: v.Uppercase, Precision: v.Precision}, nil
	default:
		return FormatterConfig{}, fmt.Errorf("%w: %T", ErrUnknownFormat, f)
	}
}
