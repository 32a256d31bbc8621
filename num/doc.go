// Package num implements a typed-number codec: it reads fixed-width
// integers and floats out of a byte buffer at a given offset and byte
// order, and renders the decoded values as text in a variety of bases.
//
// # Overview
//
// The package is built around four small types composed in a pipeline:
//
//   - Context: a bounds-checked, read-only view over a byte buffer plus a
//     cursor offset
//   - Reader: the (kind, endianness) configuration that decodes exactly one
//     value from a Context
//   - Number: the decoded value, tagged with the width, signedness,
//     floatness, and byte order it was read with
//   - Formatter: a rendering variant (hex, octal, binary, decimal,
//     scientific, default) with its own display options
//
// Data flows Context -> Reader.Read -> Number -> Formatter.Render -> string:
//
//	buffer := []byte("ABCD")
//	ctx := num.NewContext(buffer)
//	r := num.NewReader(num.U32, num.Big)
//
//	n, err := r.Read(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, _ := num.PrettyHex().Render(n) // "0x41424344"
//
// Readers and formatters are pure configuration: define one once and stamp
// it across as many reads or renders as needed. Nothing in this package
// holds mutable state, so every type is safely usable from concurrent
// callers as long as the underlying buffer is not mutated.
//
// # Provenance
//
// A Number remembers how it was read. The same four bytes decode to
// different values under different readers, and each value formats
// according to its own width and signedness:
//
//	ctx := num.NewContext([]byte{0xFF, 0xFF})
//	u, _ := num.NewReader(num.U16, num.Big).Read(ctx) // 65535
//	i, _ := num.NewReader(num.I16, num.Big).Read(ctx) // -1
//
// Provenance also makes re-encoding exact: Number.Bytes reproduces the
// original input bytes for every supported kind.
//
// # Errors
//
// Reads that extend past the buffer fail with ErrOutOfBounds and produce no
// value. Hex, octal, and binary formatters reject float-tagged numbers with
// ErrUnsupported: those bases are defined only over integer bit patterns.
// No failure is retried, logged, or silently substituted.
package num
