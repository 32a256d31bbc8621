package profile

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/numkit/numkit/num"
)

// snapshotRecord is the wire form of one decoded number: its provenance plus
// the raw bytes it decodes from. Storing bytes instead of a rendered value
// keeps the round trip exact for every kind, NaN payloads included.
type snapshotRecord struct {
	Kind   string `msgpack:"kind"`
	Endian string `msgpack:"endian"`
	Bits   []byte `msgpack:"bits"`
}

// WriteSnapshot streams the numbers to w as MessagePack records.
func WriteSnapshot(w io.Writer, nums []num.Number) error {
	enc := msgpack.NewEncoder(w)
	for i, n := range nums {
		rec := snapshotRecord{
			Kind:   n.Kind().String(),
			Endian: n.Endian().String(),
			Bits:   n.Bytes(),
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write snapshot record %d: %w", i, err)
		}
	}
	return nil
}

// ReadSnapshot decodes a stream written by WriteSnapshot. Each record is
// re-read through the reader variant its provenance names, so the returned
// numbers compare equal to the originals.
func ReadSnapshot(r io.Reader) ([]num.Number, error) {
	dec := msgpack.NewDecoder(r)
	var nums []num.Number
	for i := 0; ; i++ {
		var rec snapshotRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return nums, nil
			}
			return nil, fmt.Errorf("read snapshot record %d: %w", i, err)
		}

		kind, err := num.ParseKind(rec.Kind)
		if err != nil {
			return nil, fmt.Errorf("read snapshot record %d: %w", i, err)
		}
		endian, err := num.ParseEndian(rec.Endian)
		if err != nil {
			return nil, fmt.Errorf("read snapshot record %d: %w", i, err)
		}
		if len(rec.Bits) != kind.Size() {
			return nil, fmt.Errorf("read snapshot record %d: %w (have %d, need %d)",
				i, num.ErrOutOfBounds, len(rec.Bits), kind.Size())
		}

		n, err := num.NewReader(kind, endian).Read(num.NewContext(rec.Bits))
		if err != nil {
			return nil, fmt.Errorf("read snapshot record %d: %w", i, err)
		}
		nums = append(nums, n)
	}
}
