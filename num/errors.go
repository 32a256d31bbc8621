package num

import "errors"

var (
	// ErrOutOfBounds indicates a read extends past the end of the buffer.
	// Wrapped errors carry the requested and available byte counts.
	ErrOutOfBounds = errors.New("num: out of bounds")
	// ErrUnsupported indicates a formatter that requires integer semantics
	// was applied to a float-tagged number.
	ErrUnsupported = errors.New("num: unsupported representation")
	// ErrUnknownKind indicates a kind tag outside the supported set.
	ErrUnknownKind = errors.New("num: unknown kind")
	// ErrUnknownFormat indicates a format tag outside the supported set.
	ErrUnknownFormat = errors.New("num: unknown format")
)
