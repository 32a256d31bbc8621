package u128

import (
	"bytes"
	"testing"
)

func TestFromBytesBE(t *testing.T) {
	u := FromBytesBE([]byte{0x01, 0x23, 0x45, 0x67})
	if u.Hi != 0 || u.Lo != 0x01234567 {
		t.Fatalf("FromBytesBE = %#x,%#x want 0,0x01234567", u.Hi, u.Lo)
	}

	full := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	}
	u = FromBytesBE(full)
	if u.Hi != 0x0102030405060708 || u.Lo != 0x090a0b0c0d0e0f10 {
		t.Fatalf("FromBytesBE 16 bytes = %#x,%#x", u.Hi, u.Lo)
	}
}

func TestFromBytesLE(t *testing.T) {
	u := FromBytesLE([]byte{0x01, 0x23, 0x45, 0x67})
	if u.Hi != 0 || u.Lo != 0x67452301 {
		t.Fatalf("FromBytesLE = %#x,%#x want 0,0x67452301", u.Hi, u.Lo)
	}
}

func TestAppendRoundTrip(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8, 16} {
		src := make([]byte, width)
		for i := range src {
			src[i] = byte(0x11 * (i + 1))
		}

		u := FromBytesBE(src)
		if got := u.AppendBE(nil, width); !bytes.Equal(got, src) {
			t.Fatalf("width %d: AppendBE = % x want % x", width, got, src)
		}

		u = FromBytesLE(src)
		if got := u.AppendLE(nil, width); !bytes.Equal(got, src) {
			t.Fatalf("width %d: AppendLE = % x want % x", width, got, src)
		}
	}
}

func TestTrunc(t *testing.T) {
	u := Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	if got := u.Trunc(1); got.Lo != 0xff || got.Hi != 0 {
		t.Fatalf("Trunc(1) = %+v", got)
	}
	if got := u.Trunc(8); got.Lo != ^uint64(0) || got.Hi != 0 {
		t.Fatalf("Trunc(8) = %+v", got)
	}
	if got := u.Trunc(10); got.Hi != 0xffff || got.Lo != ^uint64(0) {
		t.Fatalf("Trunc(10) = %+v", got)
	}
	if got := u.Trunc(16); got != u {
		t.Fatalf("Trunc(16) = %+v", got)
	}
}

func TestSignExtend(t *testing.T) {
	// -1 as i8
	u := FromUint64(0xff).SignExtend(1)
	if u.Hi != ^uint64(0) || u.Lo != ^uint64(0) {
		t.Fatalf("SignExtend(0xff, 1) = %+v", u)
	}
	// 0x7f stays positive
	u = FromUint64(0x7f).SignExtend(1)
	if u.Hi != 0 || u.Lo != 0x7f {
		t.Fatalf("SignExtend(0x7f, 1) = %+v", u)
	}
	// -1 as i64
	u = FromUint64(^uint64(0)).SignExtend(8)
	if u.Hi != ^uint64(0) || u.Lo != ^uint64(0) {
		t.Fatalf("SignExtend(-1, 8) = %+v", u)
	}
	// negative 10-byte value
	u = Uint128{Hi: 0x8000, Lo: 0}.SignExtend(10)
	if u.Hi != 0xffffffffffff8000 || u.Lo != 0 {
		t.Fatalf("SignExtend 10 bytes = %+v", u)
	}
}

func TestNegAndSignedBigInt(t *testing.T) {
	one := FromUint64(1)
	minusOne := one.Neg()
	if minusOne.Hi != ^uint64(0) || minusOne.Lo != ^uint64(0) {
		t.Fatalf("Neg(1) = %+v", minusOne)
	}
	if got := minusOne.SignedBigInt().String(); got != "-1" {
		t.Fatalf("SignedBigInt(-1) = %s", got)
	}
	if got := one.SignedBigInt().String(); got != "1" {
		t.Fatalf("SignedBigInt(1) = %s", got)
	}

	// i128 minimum: 0x8000...00
	min := Uint128{Hi: 1 << 63}
	want := "-170141183460469231731687303715884105728"
	if got := min.SignedBigInt().String(); got != want {
		t.Fatalf("SignedBigInt(min) = %s want %s", got, want)
	}
}

func TestCmp(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 0}
	b := Uint128{Hi: 0, Lo: ^uint64(0)}
	if a.Cmp(b) != 1 || b.Cmp(a) != -1 || a.Cmp(a) != 0 {
		t.Fatalf("Cmp ordering wrong")
	}
}

func TestBigInt(t *testing.T) {
	u := Uint128{Hi: 1, Lo: 2}
	want := "18446744073709551618"
	if got := u.BigInt().String(); got != want {
		t.Fatalf("BigInt = %s want %s", got, want)
	}
}
