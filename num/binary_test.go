package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryU8(t *testing.T) {
	data := []byte{0x00, 0x00, 0x12, 0xAB, 0xFF, 0xFF}

	tests := []struct {
		index    int
		prefix   bool
		padded   bool
		expected string
	}{
		{0, true, true, "0b00000000"},
		{1, true, true, "0b00000000"},
		{2, true, true, "0b00010010"},
		{3, true, true, "0b10101011"},
		{4, true, true, "0b11111111"},
		{5, true, true, "0b11111111"},

		{0, false, false, "0"},
		{2, false, false, "10010"},
		{3, false, false, "10101011"},
		{4, false, false, "11111111"},
	}

	for _, tt := range tests {
		n, err := NewReader(U8, Big).ReadAt(NewContext(data), tt.index)
		require.NoError(t, err)

		got, err := BinaryFormatter{Prefix: tt.prefix, ZeroPad: tt.padded}.Render(n)
		require.NoError(t, err)
		require.Equal(t, tt.expected, got)
	}
}

func TestBinaryU32(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	n, err := NewReader(U32, Big).Read(NewContext(data))
	require.NoError(t, err)

	got, err := PrettyBinary().Render(n)
	require.NoError(t, err)
	require.Equal(t, "0b00000001001000110100010101100111", got)
}

func TestBinaryGrouping(t *testing.T) {
	n, err := FromUint(U8, 0x41)
	require.NoError(t, err)

	f := PrettyBinary()
	f.Group = Grouping{Sep: "_", Size: 4}

	got, err := f.Render(n)
	require.NoError(t, err)
	require.Equal(t, "0b0100_0001", got)
}

func TestBinarySignedShowsBitPattern(t *testing.T) {
	n, err := FromInt(I8, -128)
	require.NoError(t, err)

	got, err := PrettyBinary().Render(n)
	require.NoError(t, err)
	require.Equal(t, "0b10000000", got)
}

func TestBinaryRejectsFloat(t *testing.T) {
	n, err := FromFloat(F32, 1.0)
	require.NoError(t, err)

	_, err = PrettyBinary().Render(n)
	require.ErrorIs(t, err, ErrUnsupported)
}
