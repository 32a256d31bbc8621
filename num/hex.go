package num

// HexFormatter renders the value's bit pattern in base 16. Signed values
// show their two's-complement pattern at the original width, so an i8
// holding -1 renders as "ff". Float kinds are rejected with ErrUnsupported.
type HexFormatter struct {
	// Uppercase renders hex digits as A-F instead of a-f.
	Uppercase bool `json:"uppercase,omitempty"`

	// Prefix emits a leading "0x".
	Prefix bool `json:"prefix,omitempty"`

	// ZeroPad pads to the value's full byte width - "000012ab" vs "12ab".
	ZeroPad bool `json:"zero_pad,omitempty"`

	// Group optionally separates digit groups, e.g. "1234_5678".
	Group Grouping `json:"group,omitzero"`
}

// PrettyHex returns hex defaults matching conventional output:
// lowercase, prefixed, zero-padded, ungrouped.
func PrettyHex() HexFormatter {
	return HexFormatter{Prefix: true, ZeroPad: true}
}

// Format returns FormatHex.
func (f HexFormatter) Format() Format { return FormatHex }

// Render implements the Formatter interface.
func (f HexFormatter) Render(n Number) (string, error) {
	s, err := renderBits(n, 16, f.ZeroPad, f.Uppercase)
	if err != nil {
		return "", err
	}
	s = f.Group.apply(s)
	if f.Prefix {
		s = "0x" + s
	}
	return s, nil
}
