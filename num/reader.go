package num

import (
	"fmt"

	"github.com/numkit/numkit/internal/u128"
)

// Reader is the pure configuration for decoding one value: a Kind and the
// byte order to apply. Readers hold no state, so a single Reader is safely
// shareable and reusable across any number of reads.
type Reader struct {
	Kind   Kind   `json:"kind"`
	Endian Endian `json:"endian"`
}

// NewReader returns a Reader for the given kind and byte order.
func NewReader(kind Kind, endian Endian) Reader {
	return Reader{Kind: kind, Endian: endian}
}

// Width returns the number of bytes a call to Read consumes.
func (r Reader) Width() int {
	return r.Kind.Size()
}

// Read decodes exactly one value at the context's cursor. Either all
// Width bytes decode successfully or an error is returned and no Number is
// produced. Short buffers fail with ErrOutOfBounds.
func (r Reader) Read(ctx Context) (Number, error) {
	if !r.Kind.Valid() {
		return Number{}, fmt.Errorf("read: %w: %d", ErrUnknownKind, uint8(r.Kind))
	}

	w := r.Kind.Size()
	b, err := ctx.Bytes(w)
	if err != nil {
		return Number{}, fmt.Errorf("read %s: %w", r.Kind, err)
	}

	var bits u128.Uint128
	if r.Endian == Big {
		bits = u128.FromBytesBE(b)
	} else {
		bits = u128.FromBytesLE(b)
	}
	if r.Kind.Signed() {
		bits = bits.SignExtend(w)
	}

	return Number{kind: r.Kind, endian: r.Endian, bits: bits}, nil
}

// ReadAt is shorthand for deriving a Context at off and reading there.
func (r Reader) ReadAt(ctx Context, off int) (Number, error) {
	at, err := ctx.At(off)
	if err != nil {
		return Number{}, fmt.Errorf("read %s: %w", r.Kind, err)
	}
	return r.Read(at)
}
