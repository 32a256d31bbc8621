// Package u128 implements the 128-bit integer slot that backs decoded
// numbers. A Uint128 holds raw bits; interpretation (signedness, float
// bit patterns) is up to the caller.
package u128

import "math/big"

// Uint128 is an unsigned 128-bit integer stored as two native words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// FromUint64 returns the zero-extended 128-bit value of v.
func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromBytesBE builds a Uint128 from up to 16 big-endian bytes,
// zero-extending the result. Longer slices keep the low 16 bytes.
func FromBytesBE(b []byte) Uint128 {
	var u Uint128
	for _, c := range b {
		u.Hi = u.Hi<<8 | u.Lo>>56
		u.Lo = u.Lo<<8 | uint64(c)
	}
	return u
}

// FromBytesLE builds a Uint128 from up to 16 little-endian bytes,
// zero-extending the result.
func FromBytesLE(b []byte) Uint128 {
	var u Uint128
	for i := len(b) - 1; i >= 0; i-- {
		u.Hi = u.Hi<<8 | u.Lo>>56
		u.Lo = u.Lo<<8 | uint64(b[i])
	}
	return u
}

// byteAt returns the byte at little-endian index i (0 = least significant).
func (u Uint128) byteAt(i int) byte {
	if i < 8 {
		return byte(u.Lo >> (8 * uint(i)))
	}
	return byte(u.Hi >> (8 * uint(i-8)))
}

// AppendBE appends the low width bytes of u to dst in big-endian order.
func (u Uint128) AppendBE(dst []byte, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, u.byteAt(i))
	}
	return dst
}

// AppendLE appends the low width bytes of u to dst in little-endian order.
func (u Uint128) AppendLE(dst []byte, width int) []byte {
	for i := 0; i < width; i++ {
		dst = append(dst, u.byteAt(i))
	}
	return dst
}

// Trunc zeroes every bit above the low width bytes.
func (u Uint128) Trunc(width int) Uint128 {
	if width >= 16 {
		return u
	}
	bits := uint(width * 8)
	switch {
	case bits < 64:
		u.Lo &= 1<<bits - 1
		u.Hi = 0
	case bits == 64:
		u.Hi = 0
	default:
		u.Hi &= 1<<(bits-64) - 1
	}
	return u
}

// SignExtend treats the low width bytes as a two's-complement value and
// extends its sign bit through the full 128 bits.
func (u Uint128) SignExtend(width int) Uint128 {
	if width >= 16 {
		return u
	}
	u = u.Trunc(width)
	bits := uint(width * 8)
	var neg bool
	if bits <= 64 {
		neg = u.Lo&(1<<(bits-1)) != 0
	} else {
		neg = u.Hi&(1<<(bits-65)) != 0
	}
	if !neg {
		return u
	}
	if bits <= 64 {
		u.Lo |= ^uint64(0) << bits // shift of 64 yields 0, leaving Lo intact
		u.Hi = ^uint64(0)
	} else {
		u.Hi |= ^uint64(0) << (bits - 64)
	}
	return u
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Bit127 reports whether the most significant bit is set.
func (u Uint128) Bit127() bool {
	return u.Hi&(1<<63) != 0
}

// Neg returns the two's-complement negation of u.
func (u Uint128) Neg() Uint128 {
	lo := ^u.Lo + 1
	hi := ^u.Hi
	if lo == 0 {
		hi++
	}
	return Uint128{Hi: hi, Lo: lo}
}

// Cmp compares u and v as unsigned 128-bit values.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Uint64 returns the low word and whether u fits in 64 bits.
func (u Uint128) Uint64() (uint64, bool) {
	return u.Lo, u.Hi == 0
}

// BigInt returns the unsigned value of u.
func (u Uint128) BigInt() *big.Int {
	n := new(big.Int).SetUint64(u.Hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(u.Lo))
}

// SignedBigInt interprets u as a 128-bit two's-complement value.
func (u Uint128) SignedBigInt() *big.Int {
	if !u.Bit127() {
		return u.BigInt()
	}
	n := u.Neg().BigInt()
	return n.Neg(n)
}
