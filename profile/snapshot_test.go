package profile

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/numkit/numkit/num"
)

func TestSnapshotRoundTrip(t *testing.T) {
	readAll := func(t *testing.T, reads ...func() (num.Number, error)) []num.Number {
		t.Helper()
		var nums []num.Number
		for _, read := range reads {
			n, err := read()
			require.NoError(t, err)
			nums = append(nums, n)
		}
		return nums
	}

	mk := func(kind num.Kind, endian num.Endian, data []byte) func() (num.Number, error) {
		return func() (num.Number, error) {
			return num.NewReader(kind, endian).Read(num.NewContext(data))
		}
	}

	nums := readAll(t,
		mk(num.U8, num.Little, []byte{0xFF}),
		mk(num.U32, num.Big, []byte{0x01, 0x23, 0x45, 0x67}),
		mk(num.U32, num.Little, []byte{0x01, 0x23, 0x45, 0x67}),
		mk(num.I16, num.Big, []byte{0xFF, 0xFE}),
		mk(num.I128, num.Big, bytes.Repeat([]byte{0xFF}, 16)),
		mk(num.F64, num.Big, []byte{0x40, 0x09, 0x1E, 0xB8, 0x51, 0xEB, 0x85, 0x1F}),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, nums))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(nums))
	for i := range nums {
		assert.True(t, nums[i].Equal(got[i]), "record %d: %s != %s", i, nums[i], got[i])
		assert.Equal(t, nums[i].Kind(), got[i].Kind())
		assert.Equal(t, nums[i].Endian(), got[i].Endian())
		assert.Equal(t, nums[i].Bytes(), got[i].Bytes())
	}
}

func TestSnapshotNaNPayload(t *testing.T) {
	// A quiet NaN with a non-default payload must survive byte-for-byte.
	payload := []byte{0x7F, 0xF8, 0x00, 0x00, 0x00, 0x00, 0xBE, 0xEF}
	n, err := num.NewReader(num.F64, num.Big).Read(num.NewContext(payload))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, []num.Number{n}))
	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.True(t, math.IsNaN(got[0].Float64()))
	assert.Equal(t, payload, got[0].Bytes())
}

func TestSnapshotEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, nil))
	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSnapshotBadRecord(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		require.NoError(t, enc.Encode(snapshotRecord{Kind: "u13", Endian: "big", Bits: []byte{0}}))

		_, err := ReadSnapshot(&buf)
		assert.ErrorIs(t, err, num.ErrUnknownKind)
	})

	t.Run("wrong bits length", func(t *testing.T) {
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		require.NoError(t, enc.Encode(snapshotRecord{Kind: "u32", Endian: "big", Bits: []byte{0x01}}))

		_, err := ReadSnapshot(&buf)
		assert.ErrorIs(t, err, num.ErrOutOfBounds)
	})

	t.Run("truncated stream", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := num.NewReader(num.U8, num.Little).Read(num.NewContext([]byte{0x42}))
		require.NoError(t, err)
		require.NoError(t, WriteSnapshot(&buf, []num.Number{n}))

		_, err = ReadSnapshot(bytes.NewReader(buf.Bytes()[:buf.Len()-1]))
		assert.Error(t, err)
	})
}
