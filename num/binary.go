package num

// BinaryFormatter renders the value's bit pattern in base 2 at the original
// width. Float kinds are rejected with ErrUnsupported.
type BinaryFormatter struct {
	// Uppercase is accepted for config symmetry; binary digits have no case.
	Uppercase bool `json:"uppercase,omitempty"`

	// Prefix emits a leading "0b".
	Prefix bool `json:"prefix,omitempty"`

	// ZeroPad pads to the full bit width - "00000001" vs "1".
	ZeroPad bool `json:"zero_pad,omitempty"`

	// Group optionally separates digit groups, e.g. "0100_0001".
	Group Grouping `json:"group,omitzero"`
}

// PrettyBinary returns binary defaults matching conventional output:
// prefixed, zero-padded, ungrouped.
func PrettyBinary() BinaryFormatter {
	return BinaryFormatter{Prefix: true, ZeroPad: true}
}

// Format returns FormatBinary.
func (f BinaryFormatter) Format() Format { return FormatBinary }

// Render implements the Formatter interface.
func (f BinaryFormatter) Render(n Number) (string, error) {
	s, err := renderBits(n, 2, f.ZeroPad, f.Uppercase)
	if err != nil {
		return "", err
	}
	s = f.Group.apply(s)
	if f.Prefix {
		s = "0b" + s
	}
	return s, nil
}
