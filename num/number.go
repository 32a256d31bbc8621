package num

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/numkit/numkit/internal/u128"
)

// Number is a decoded value tagged with its provenance: the kind (width,
// signedness, floatness) and byte order it was read with. The provenance is
// what makes re-rendering and re-encoding exact - a value read as i8 formats
// as a signed 8-bit quantity even though it is stored in a wider slot.
//
// Numbers are immutable once constructed. The internal slot holds raw bits:
// zero-extended for unsigned kinds, sign-extended for signed kinds, and the
// IEEE-754 bit pattern for float kinds, so the in-range invariant holds by
// construction and byte round-trips are exact (including NaN payloads).
type Number struct {
	kind   Kind
	endian Endian
	bits   u128.Uint128
}

// FromUint constructs a Number of an integer kind from an unsigned value.
// It fails when the kind is float or the value is out of range for the
// kind's width and signedness. The provenance byte order is Little.
func FromUint(k Kind, v uint64) (Number, error) {
	if !k.Valid() || k.Float() {
		return Number{}, fmt.Errorf("num: cannot build %s from an unsigned integer", k)
	}
	bits := k.Bits()
	if k.Signed() {
		bits--
	}
	if bits < 64 && v >= 1<<uint(bits) {
		return Number{}, fmt.Errorf("num: value %d out of range for %s", v, k)
	}
	return Number{kind: k, endian: Little, bits: u128.FromUint64(v)}, nil
}

// FromInt constructs a Number of an integer kind from a signed value.
// It fails when the kind is float or the value is out of range.
func FromInt(k Kind, v int64) (Number, error) {
	if !k.Valid() || k.Float() {
		return Number{}, fmt.Errorf("num: cannot build %s from a signed integer", k)
	}
	if v >= 0 {
		return FromUint(k, uint64(v))
	}
	if !k.Signed() {
		return Number{}, fmt.Errorf("num: value %d out of range for %s", v, k)
	}
	if bits := k.Bits(); bits < 64 && v < -(1<<uint(bits-1)) {
		return Number{}, fmt.Errorf("num: value %d out of range for %s", v, k)
	}
	slot := u128.FromUint64(uint64(v)).SignExtend(8)
	return Number{kind: k, endian: Little, bits: slot}, nil
}

// FromFloat constructs a Number of a float kind. F32 values are rounded to
// single precision.
func FromFloat(k Kind, v float64) (Number, error) {
	switch k {
	case F32:
		return Number{kind: k, endian: Little, bits: u128.FromUint64(uint64(math.Float32bits(float32(v))))}, nil
	case F64:
		return Number{kind: k, endian: Little, bits: u128.FromUint64(math.Float64bits(v))}, nil
	default:
		return Number{}, fmt.Errorf("num: cannot build %s from a float", k)
	}
}

// Kind returns the variant the value was read as.
func (n Number) Kind() Kind { return n.kind }

// Endian returns the byte order the value was read with.
func (n Number) Endian() Endian { return n.endian }

// Size returns the byte width of the value's original encoding.
func (n Number) Size() int { return n.kind.Size() }

// Signed reports whether the value is a two's-complement integer.
func (n Number) Signed() bool { return n.kind.Signed() }

// Float reports whether the value is an IEEE-754 float.
func (n Number) Float() bool { return n.kind.Float() }

// negative reports whether an integer Number holds a negative value.
func (n Number) negative() bool {
	return n.kind.Signed() && n.bits.Bit127()
}

// Uint64 returns the value as a uint64. ok is false for float kinds,
// negative values, and values beyond 64 bits.
func (n Number) Uint64() (uint64, bool) {
	if n.kind.Float() || n.negative() {
		return 0, false
	}
	return n.bits.Uint64()
}

// Int64 returns the value as an int64. ok is false for float kinds and
// values outside the int64 range.
func (n Number) Int64() (int64, bool) {
	if n.kind.Float() {
		return 0, false
	}
	switch {
	case n.bits.Hi == 0 && n.bits.Lo <= math.MaxInt64:
		return int64(n.bits.Lo), true
	case n.negative() && n.bits.Hi == ^uint64(0) && int64(n.bits.Lo) < 0:
		return int64(n.bits.Lo), true
	default:
		return 0, false
	}
}

// Float64 returns the value as a float64. Exact for float kinds; integer
// kinds beyond 53 bits are rounded to the nearest representable value.
func (n Number) Float64() float64 {
	switch n.kind {
	case F32:
		return float64(math.Float32frombits(uint32(n.bits.Lo)))
	case F64:
		return math.Float64frombits(n.bits.Lo)
	}
	f, _ := new(big.Float).SetInt(n.BigInt()).Float64()
	return f
}

// BigInt returns the exact signed value of an integer Number, or nil for
// float kinds.
func (n Number) BigInt() *big.Int {
	if n.kind.Float() {
		return nil
	}
	if n.kind.Signed() {
		return n.bits.SignedBigInt()
	}
	return n.bits.BigInt()
}

// Bytes re-encodes the value at its original width and byte order.
// Reading bytes and calling Bytes on the result reproduces the input
// exactly for every supported kind.
func (n Number) Bytes() []byte {
	w := n.kind.Size()
	if n.endian == Big {
		return n.bits.AppendBE(nil, w)
	}
	return n.bits.AppendLE(nil, w)
}

// Cmp compares the mathematical values of n and m, ignoring provenance:
// a u8 holding 1 equals an i64 holding 1 equals an f64 holding 1.0.
// NaN orders before every other value and equals only another NaN,
// matching cmp.Compare for float64.
func (n Number) Cmp(m Number) int {
	if !n.kind.Float() && !m.kind.Float() {
		nn, mn := n.negative(), m.negative()
		switch {
		case nn && !mn:
			return -1
		case !nn && mn:
			return 1
		}
		return n.bits.Cmp(m.bits)
	}

	nNaN := n.kind.Float() && math.IsNaN(n.Float64())
	mNaN := m.kind.Float() && math.IsNaN(m.Float64())
	switch {
	case nNaN && mNaN:
		return 0
	case nNaN:
		return -1
	case mNaN:
		return 1
	}
	return n.bigFloat().Cmp(m.bigFloat())
}

// Equal reports whether n and m hold the same mathematical value.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

// bigFloat returns the exact value of n as a big.Float. Must not be called
// with a NaN value.
func (n Number) bigFloat() *big.Float {
	if n.kind.Float() {
		return new(big.Float).SetFloat64(n.Float64())
	}
	return new(big.Float).SetInt(n.BigInt())
}

// String renders the value with the default formatter.
func (n Number) String() string {
	s, err := NewDefault().Render(n)
	if err != nil {
		return fmt.Sprintf("num: %v", err)
	}
	return s
}

// numberJSON is the stable serialized representation of a Number. Bits is
// the hex string of the value's raw width bytes in big-endian order, which
// is exact for every kind (float NaN payloads included).
type numberJSON struct {
	Kind   Kind   `json:"kind"`
	Endian Endian `json:"endian"`
	Bits   string `json:"bits"`
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(numberJSON{
		Kind:   n.kind,
		Endian: n.endian,
		Bits:   hex.EncodeToString(n.bits.AppendBE(nil, n.kind.Size())),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var raw numberJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b, err := hex.DecodeString(raw.Bits)
	if err != nil {
		return fmt.Errorf("num: bad bits field: %w", err)
	}
	w := raw.Kind.Size()
	if len(b) != w {
		return fmt.Errorf("num: bits length %d does not match %s width %d", len(b), raw.Kind, w)
	}
	bits := u128.FromBytesBE(b)
	if raw.Kind.Signed() {
		bits = bits.SignExtend(w)
	}
	*n = Number{kind: raw.Kind, endian: raw.Endian, bits: bits}
	return nil
}
