package num

import (
	"strconv"
	"strings"
)

// floatBitSize returns the strconv bit size for a float Number, so f32
// values render with single-precision shortest digits.
func floatBitSize(n Number) int {
	if n.kind == F32 {
		return 32
	}
	return 64
}

// formatFloatNatural renders a float Number in its shortest natural form,
// with the exponent spelling normalized ("1e+300" becomes "1e300").
func formatFloatNatural(n Number) string {
	s := strconv.FormatFloat(n.Float64(), 'g', -1, floatBitSize(n))
	return cleanExponent(s)
}

// cleanExponent strips the plus sign and leading zeros from the exponent
// part of a strconv-formatted float: "1.23e+07" -> "1.23e7",
// "1e-07" -> "1e-7". Strings without an exponent pass through unchanged.
func cleanExponent(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s
	}
	mant, exp := s[:i], s[i+1:]
	neg := ""
	switch {
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	case strings.HasPrefix(exp, "-"):
		neg = "-"
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
		neg = ""
	}
	return mant + s[i:i+1] + neg + exp
}
