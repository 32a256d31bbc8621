// Package chars reads single characters out of byte buffers, the textual
// sibling of the numeric codec in package num. It supports fixed-width
// encodings commonly found in binary formats: ASCII, Windows-1252, and
// UTF-16 in either byte order.
package chars

import (
	"fmt"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/numkit/numkit/num"
)

// Encoding selects how bytes map to a character.
type Encoding uint8

const (
	// ASCII reads one byte; values outside 0x20-0x7E are not printable.
	ASCII Encoding = iota
	// Latin1 reads one byte decoded through the Windows-1252 table.
	Latin1
	// UTF16 reads one code unit (two bytes), or four bytes for a
	// surrogate pair, in the reader's byte order.
	UTF16
)

// String implements the Stringer interface for Encoding.
func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ascii"
	case Latin1:
		return "latin1"
	case UTF16:
		return "utf16"
	default:
		return fmt.Sprintf("UNKNOWN_ENCODING_%d", uint8(e))
	}
}

// ParseEncoding converts an encoding name into an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "ascii":
		return ASCII, nil
	case "latin1", "windows-1252":
		return Latin1, nil
	case "utf16":
		return UTF16, nil
	default:
		return 0, fmt.Errorf("chars: unknown encoding %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if e != ASCII && e != Latin1 && e != UTF16 {
		return nil, fmt.Errorf("chars: unknown encoding %d", uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Char is a decoded character: the rune, how many bytes it consumed, and
// whether it is printable.
type Char struct {
	Rune      rune
	Size      int
	Printable bool
}

// String renders the character, or "<invalid>" when it is not printable.
func (c Char) String() string {
	if !c.Printable {
		return "<invalid>"
	}
	return string(c.Rune)
}

// Reader is the pure configuration for decoding one character. Endian only
// matters for UTF16.
type Reader struct {
	Encoding Encoding   `json:"encoding"`
	Endian   num.Endian `json:"endian"`
}

// NewReader returns a Reader for the given encoding and byte order.
func NewReader(encoding Encoding, endian num.Endian) Reader {
	return Reader{Encoding: encoding, Endian: endian}
}

// Read decodes exactly one character at the context's cursor. Short buffers
// fail with num.ErrOutOfBounds.
func (r Reader) Read(ctx num.Context) (Char, error) {
	switch r.Encoding {
	case ASCII:
		b, err := ctx.Bytes(1)
		if err != nil {
			return Char{}, fmt.Errorf("read ascii: %w", err)
		}
		c := b[0]
		return Char{
			Rune:      rune(c),
			Size:      1,
			Printable: c > 0x1F && c < 0x7F,
		}, nil

	case Latin1:
		b, err := ctx.Bytes(1)
		if err != nil {
			return Char{}, fmt.Errorf("read latin1: %w", err)
		}
		rn := charmap.Windows1252.DecodeByte(b[0])
		return Char{
			Rune:      rn,
			Size:      1,
			Printable: rn != utf8.RuneError && unicode.IsPrint(rn),
		}, nil

	case UTF16:
		return r.readUTF16(ctx)

	default:
		return Char{}, fmt.Errorf("chars: unknown encoding %d", uint8(r.Encoding))
	}
}

func (r Reader) readUTF16(ctx num.Context) (Char, error) {
	unit, err := r.readUnit(ctx)
	if err != nil {
		return Char{}, err
	}

	if !utf16.IsSurrogate(rune(unit)) {
		rn := rune(unit)
		return Char{Rune: rn, Size: 2, Printable: unicode.IsPrint(rn)}, nil
	}

	// High surrogate: the pair needs two more bytes.
	next, err := ctx.At(ctx.Offset() + 2)
	if err != nil {
		return Char{Rune: utf8.RuneError, Size: 2}, nil
	}
	low, err := r.readUnit(next)
	if err != nil {
		return Char{Rune: utf8.RuneError, Size: 2}, nil
	}

	rn := utf16.DecodeRune(rune(unit), rune(low))
	if rn == utf8.RuneError {
		// Unpaired surrogate: consume only the first unit.
		return Char{Rune: utf8.RuneError, Size: 2}, nil
	}
	return Char{Rune: rn, Size: 4, Printable: unicode.IsPrint(rn)}, nil
}

// readUnit reads one 16-bit code unit in the reader's byte order.
func (r Reader) readUnit(ctx num.Context) (uint16, error) {
	b, err := ctx.Bytes(2)
	if err != nil {
		return 0, fmt.Errorf("read utf16: %w", err)
	}
	if r.Endian == num.Big {
		return uint16(b[0])<<8 | uint16(b[1]), nil
	}
	return uint16(b[1])<<8 | uint16(b[0]), nil
}
