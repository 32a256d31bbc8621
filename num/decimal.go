package num

import (
	"math"
	"strings"
)

// DecimalFormatter renders the signed value in base 10. Unsigned kinds show
// their magnitude; signed kinds show their two's-complement interpretation
// (an i8 holding 0xFF renders as "-1"). Float kinds render in their natural
// shortest form.
type DecimalFormatter struct {
	// ThousandsSep optionally separates integer digits in groups of three.
	ThousandsSep string `json:"thousands_sep,omitempty"`

	// Sign controls explicit sign display.
	Sign SignMode `json:"sign,omitempty"`
}

// NewDecimal returns a plain decimal formatter: no separator, minus sign
// on negative values only.
func NewDecimal() DecimalFormatter {
	return DecimalFormatter{}
}

// Format returns FormatDecimal.
func (f DecimalFormatter) Format() Format { return FormatDecimal }

// Render implements the Formatter interface.
func (f DecimalFormatter) Render(n Number) (string, error) {
	if n.Float() {
		return f.renderFloat(n), nil
	}

	s := n.BigInt().String()
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if f.ThousandsSep != "" {
		digits = Grouping{Sep: f.ThousandsSep, Size: 3}.apply(digits)
	}
	return f.sign(neg) + digits, nil
}

func (f DecimalFormatter) renderFloat(n Number) string {
	v := n.Float64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatFloatNatural(n)
	}

	s := formatFloatNatural(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	// Grouping only applies to the plain form; exponent forms pass through.
	if f.ThousandsSep != "" && !strings.ContainsAny(s, "eE") {
		intPart, frac, hasFrac := strings.Cut(s, ".")
		intPart = Grouping{Sep: f.ThousandsSep, Size: 3}.apply(intPart)
		if hasFrac {
			s = intPart + "." + frac
		} else {
			s = intPart
		}
	}
	return f.sign(neg) + s
}

func (f DecimalFormatter) sign(neg bool) string {
	switch {
	case neg:
		return "-"
	case f.Sign == SignAlways:
		return "+"
	default:
		return ""
	}
}
