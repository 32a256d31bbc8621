package num

import (
	"fmt"

	"github.com/numkit/numkit/internal/buf"
)

// Context is a bounds-checked, read-only view over a byte buffer plus a
// cursor offset. A Context never owns or mutates the buffer; it is a cheap
// value type meant to be created per read and discarded.
//
// Reads never advance the cursor. Callers decoding sequential values derive
// a new Context at the updated offset via At.
type Context struct {
	data []byte
	off  int
}

// NewContext returns a Context over data with the cursor at offset 0.
func NewContext(data []byte) Context {
	return Context{data: data}
}

// NewContextAt returns a Context over data with the cursor at off. It fails
// with ErrOutOfBounds when off is negative or beyond the end of the buffer.
func NewContextAt(data []byte, off int) (Context, error) {
	if off < 0 || off > len(data) {
		return Context{}, fmt.Errorf("context: %w (offset %d, length %d)", ErrOutOfBounds, off, len(data))
	}
	return Context{data: data, off: off}, nil
}

// At returns a Context over the same buffer with the cursor moved to off.
func (c Context) At(off int) (Context, error) {
	return NewContextAt(c.data, off)
}

// Bytes returns the n bytes starting at the cursor. It fails with
// ErrOutOfBounds when fewer than n bytes remain; the returned slice aliases
// the underlying buffer and must not be modified.
func (c Context) Bytes(n int) ([]byte, error) {
	b, ok := buf.Slice(c.data, c.off, n)
	if !ok {
		return nil, fmt.Errorf("context: %w (have %d, need %d)", ErrOutOfBounds, c.Remaining(), n)
	}
	return b, nil
}

// Offset returns the cursor position.
func (c Context) Offset() int { return c.off }

// Len returns the total buffer length.
func (c Context) Len() int { return len(c.data) }

// Remaining returns the number of bytes between the cursor and the end of
// the buffer.
func (c Context) Remaining() int { return len(c.data) - c.off }
