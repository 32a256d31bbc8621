// Package blob opens binary files for decoding. On platforms that support
// it the file is memory-mapped read-only, so large inputs cost no heap; the
// contents are exposed through num.Context views.
package blob

import (
	"errors"
	"fmt"
	"sync"

	"github.com/numkit/numkit/internal/mmfile"
	"github.com/numkit/numkit/num"
)

// ErrClosed is returned when a Blob is used after Close.
var ErrClosed = errors.New("blob: closed")

// Blob is a read-only byte source backed by a file mapping or an in-memory
// buffer. It is safe for concurrent reads; Close must be called once the
// contexts derived from it are no longer in use.
type Blob struct {
	mu     sync.Mutex
	data   []byte
	unmap  func() error
	closed bool
}

// Open maps the file at path.
func Open(path string) (*Blob, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return &Blob{data: data, unmap: unmap}, nil
}

// FromBytes wraps an in-memory buffer. Close is a no-op for these blobs.
func FromBytes(data []byte) *Blob {
	return &Blob{data: data}
}

// Bytes returns the underlying buffer. The slice aliases the mapping and is
// invalid after Close.
func (b *Blob) Bytes() []byte { return b.data }

// Len returns the blob size in bytes.
func (b *Blob) Len() int { return len(b.data) }

// Context returns a decoding context positioned at the start of the blob.
func (b *Blob) Context() num.Context {
	return num.NewContext(b.data)
}

// ContextAt returns a decoding context positioned at off.
func (b *Blob) ContextAt(off int) (num.Context, error) {
	return num.NewContextAt(b.data, off)
}

// Close releases the mapping. Contexts derived from the blob must not be
// used afterwards. Close is idempotent.
func (b *Blob) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.closed = true
	b.data = nil
	if b.unmap != nil {
		return b.unmap()
	}
	return nil
}
