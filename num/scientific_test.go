package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScientificU32(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x7F, 0xFF, 0xFF, 0xFF,
		0x80, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
	}

	tests := []struct {
		index     int
		uppercase bool
		expected  string
	}{
		{0, false, "0e0"},
		{4, false, "2.147483647e9"},
		{8, false, "2.147483648e9"},
		{12, false, "4.294967295e9"},
		{0, true, "0E0"},
		{4, true, "2.147483647E9"},
		{8, true, "2.147483648E9"},
		{12, true, "4.294967295E9"},
	}

	for _, tt := range tests {
		n, err := NewReader(U32, Big).ReadAt(NewContext(data), tt.index)
		require.NoError(t, err)

		got, err := ScientificFormatter{Uppercase: tt.uppercase}.Render(n)
		require.NoError(t, err)
		require.Equal(t, tt.expected, got)
	}
}

func TestScientificI32(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x7F, 0xFF, 0xFF, 0xFF,
		0x80, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
	}

	tests := []struct {
		index     int
		uppercase bool
		expected  string
	}{
		{0, false, "0e0"},
		{4, false, "2.147483647e9"},
		{8, false, "-2.147483648e9"},
		{12, false, "-1e0"},
		{8, true, "-2.147483648E9"},
		{12, true, "-1E0"},
	}

	for _, tt := range tests {
		n, err := NewReader(I32, Big).ReadAt(NewContext(data), tt.index)
		require.NoError(t, err)

		got, err := ScientificFormatter{Uppercase: tt.uppercase}.Render(n)
		require.NoError(t, err)
		require.Equal(t, tt.expected, got)
	}
}

func TestScientificTrailingZeros(t *testing.T) {
	n, err := FromUint(U8, 100)
	require.NoError(t, err)

	got, err := PrettyScientific().Render(n)
	require.NoError(t, err)
	require.Equal(t, "1e2", got)

	n, err = FromUint(U32, 1000000)
	require.NoError(t, err)

	got, err = PrettyScientific().Render(n)
	require.NoError(t, err)
	require.Equal(t, "1e6", got)
}

func TestScientificU128(t *testing.T) {
	allFF := make([]byte, 16)
	for i := range allFF {
		allFF[i] = 0xFF
	}

	n, err := NewReader(U128, Big).Read(NewContext(allFF))
	require.NoError(t, err)

	got, err := PrettyScientific().Render(n)
	require.NoError(t, err)
	require.Equal(t, "3.40282366920938463463374607431768211455e38", got)
}

func TestScientificPrecision(t *testing.T) {
	n, err := FromUint(U32, 19088743)
	require.NoError(t, err)

	got, err := ScientificFormatter{Precision: 3}.Render(n)
	require.NoError(t, err)
	require.Equal(t, "1.909e7", got)

	got, err = ScientificFormatter{Precision: 2}.Render(n)
	require.NoError(t, err)
	require.Equal(t, "1.91e7", got)

	// Rounding carries into a new leading digit.
	n, err = FromUint(U16, 999)
	require.NoError(t, err)

	got, err = ScientificFormatter{Precision: 1}.Render(n)
	require.NoError(t, err)
	require.Equal(t, "1e3", got)
}

func TestScientificF64(t *testing.T) {
	// 3.14 and 3.15 as big-endian f64 (IEEE-754)
	data := []byte{
		0x40, 0x09, 0x1E, 0xB8, 0x51, 0xEB, 0x85, 0x1F,
		0x40, 0x09, 0x33, 0x33, 0x33, 0x33, 0x33, 0x33,
	}

	tests := []struct {
		index     int
		uppercase bool
		expected  string
	}{
		{0, false, "3.14e0"},
		{8, false, "3.15e0"},
		{0, true, "3.14E0"},
		{8, true, "3.15E0"},
	}

	for _, tt := range tests {
		n, err := NewReader(F64, Big).ReadAt(NewContext(data), tt.index)
		require.NoError(t, err)

		got, err := ScientificFormatter{Uppercase: tt.uppercase}.Render(n)
		require.NoError(t, err)
		require.Equal(t, tt.expected, got)
	}
}

func TestScientificF32(t *testing.T) {
	n, err := FromFloat(F32, 314.159)
	require.NoError(t, err)

	got, err := PrettyScientific().Render(n)
	require.NoError(t, err)
	require.Equal(t, "3.14159e2", got)
}

func TestScientificFloatPrecision(t *testing.T) {
	n, err := FromFloat(F64, 3.14159)
	require.NoError(t, err)

	got, err := ScientificFormatter{Precision: 2}.Render(n)
	require.NoError(t, err)
	require.Equal(t, "3.14e0", got)
}

func TestScientificNegativeExponent(t *testing.T) {
	n, err := FromFloat(F64, 0.015625)
	require.NoError(t, err)

	got, err := PrettyScientific().Render(n)
	require.NoError(t, err)
	require.Equal(t, "1.5625e-2", got)
}
