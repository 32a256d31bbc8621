package num

// DefaultFormatter renders without configuration: plain decimal for
// integer kinds, the natural shortest form for float kinds.
type DefaultFormatter struct{}

// NewDefault returns the default formatter.
func NewDefault() DefaultFormatter {
	return DefaultFormatter{}
}

// Format returns FormatDefault.
func (DefaultFormatter) Format() Format { return FormatDefault }

// Render implements the Formatter interface.
func (DefaultFormatter) Render(n Number) (string, error) {
	if n.Float() {
		return formatFloatNatural(n), nil
	}
	return n.BigInt().String(), nil
}
