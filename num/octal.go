package num

// OctalFormatter renders the value's bit pattern in base 8. Like hex and
// binary, it operates on the two's-complement pattern at the original width
// and rejects float kinds with ErrUnsupported.
type OctalFormatter struct {
	// Uppercase is accepted for config symmetry; octal digits have no case.
	Uppercase bool `json:"uppercase,omitempty"`

	// Prefix emits a leading "0o".
	Prefix bool `json:"prefix,omitempty"`

	// ZeroPad pads to the full byte width in octal digits - "011064" vs "11064".
	ZeroPad bool `json:"zero_pad,omitempty"`

	// Group optionally separates digit groups.
	Group Grouping `json:"group,omitzero"`
}

// PrettyOctal returns octal defaults matching conventional output:
// prefixed, unpadded, ungrouped.
func PrettyOctal() OctalFormatter {
	return OctalFormatter{Prefix: true}
}

// Format returns FormatOctal.
func (f OctalFormatter) Format() Format { return FormatOctal }

// Render implements the Formatter interface.
func (f OctalFormatter) Render(n Number) (string, error) {
	s, err := renderBits(n, 8, f.ZeroPad, f.Uppercase)
	if err != nil {
		return "", err
	}
	s = f.Group.apply(s)
	if f.Prefix {
		s = "0o" + s
	}
	return s, nil
}
