package num

import (
	"strconv"
	"strings"
)

// ScientificFormatter renders the value in exponent notation with a bare
// exponent: "1.9088743e7" rather than "1.9088743e+07". Integer kinds render
// exactly at every width via decimal-string math; float kinds use the
// shortest mantissa unless Precision is set.
type ScientificFormatter struct {
	// Uppercase renders the exponent marker as 'E' instead of 'e'.
	Uppercase bool `json:"uppercase,omitempty"`

	// Precision is the number of mantissa digits after the point.
	// Zero or negative selects the shortest exact representation.
	Precision int `json:"precision,omitempty"`
}

// PrettyScientific returns scientific defaults matching conventional
// output: lowercase marker, shortest mantissa.
func PrettyScientific() ScientificFormatter {
	return ScientificFormatter{}
}

// Format returns FormatScientific.
func (f ScientificFormatter) Format() Format { return FormatScientific }

// Render implements the Formatter interface.
func (f ScientificFormatter) Render(n Number) (string, error) {
	if n.Float() {
		prec := -1
		if f.Precision > 0 {
			prec = f.Precision
		}
		s := strconv.FormatFloat(n.Float64(), 'e', prec, floatBitSize(n))
		s = cleanExponent(s)
		if f.Uppercase {
			s = strings.Replace(s, "e", "E", 1)
		}
		return s, nil
	}
	return f.renderInt(n), nil
}

// renderInt renders an integer Number exactly: the decimal digit string is
// the mantissa and the exponent is its length minus one.
func (f ScientificFormatter) renderInt(n Number) string {
	s := n.BigInt().String()
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	exp := len(digits) - 1
	if f.Precision > 0 && len(digits) > f.Precision+1 {
		var carried bool
		digits, carried = roundDecimal(digits, f.Precision+1)
		if carried {
			exp++
		}
	}

	mant := strings.TrimRight(digits, "0")
	if mant == "" {
		mant = "0"
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(mant[:1])
	if len(mant) > 1 {
		b.WriteByte('.')
		b.WriteString(mant[1:])
	}
	if f.Uppercase {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// roundDecimal rounds a digit string half-up to keep digits. carried is
// true when rounding overflowed into a new leading digit ("99" -> "10"),
// in which case the caller's exponent grows by one.
func roundDecimal(digits string, keep int) (string, bool) {
	if keep >= len(digits) {
		return digits, false
	}
	d := []byte(digits[:keep])
	if digits[keep] < '5' {
		return string(d), false
	}
	for i := keep - 1; i >= 0; i-- {
		if d[i] != '9' {
			d[i]++
			return string(d), false
		}
		d[i] = '0'
	}
	return "1" + string(d[:keep-1]), true
}
