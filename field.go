package p256

import (
	"math/big"
	"math/bits"
)

// fe is a P-256 field element: four 64-bit limbs, little-endian (fe[0] is
// the low 64 bits). A value of type fe is always held in the Montgomery
// domain — it represents the residue a·R mod p for R = 2^256 — and is
// always fully reduced to [0, p), except while an operation is in the
// middle of computing one (see field_mul.go's wide-product helpers).
//
// Every function in this file and field_mul.go runs in time and memory
// access pattern independent of the values of its fe arguments: no
// branches or table lookups keyed on limb contents, only on fixed shapes
// (loop trip counts, slice lengths) known at compile time.
type fe [4]uint64

// fieldP is the P-256 prime p = 2^256 - 2^224 + 2^192 + 2^96 - 1.
var fieldP = fe{0xffffffffffffffff, 0x00000000ffffffff, 0x0000000000000000, 0xffffffff00000001}

// feZero is the additive identity, 0, which is its own Montgomery form.
var feZero = fe{0, 0, 0, 0}

// feOne is the multiplicative identity in Montgomery form: R mod p.
var feOne = fe{0x0000000000000001, 0xffffffff00000000, 0xffffffffffffffff, 0x00000000fffffffe}

// feR2 is R^2 mod p, used by ToMontgomery: to_mont(x) = mulMont(x, R2) = x·R mod p.
var feR2 = fe{0x0000000000000003, 0xfffffffbffffffff, 0xfffffffffffffffe, 0x00000004fffffffd}

// feP0Prime is -p^-1 mod 2^64, the Montgomery reduction constant for the
// low limb. For P-256 this happens to equal 1 (p's low limb is 2^64-1), but
// field_mul.go's REDC step keeps the general multiply-by-constant form
// rather than special-casing it, so the algorithm reads the same as it
// would for any modulus of this shape.
const feP0Prime = 0x0000000000000001

// add4 computes z = x + y over 4 limbs, returning the carry out of the top limb.
func add4(z, x, y *fe) uint64 {
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], c = bits.Add64(x[3], y[3], c)
	return c
}

// sub4 computes z = x - y over 4 limbs, returning the borrow out of the top limb.
func sub4(z, x, y *fe) uint64 {
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)
	return b
}

// cmov sets z = x if flag == 1, leaves z unchanged if flag == 0. flag must
// be exactly 0 or 1; any other value makes the result undefined. Branch-free.
func (z *fe) cmov(x *fe, flag uint64) {
	mask := -flag
	z[0] ^= mask & (z[0] ^ x[0])
	z[1] ^= mask & (z[1] ^ x[1])
	z[2] ^= mask & (z[2] ^ x[2])
	z[3] ^= mask & (z[3] ^ x[3])
}

// ctSelect returns x if flag == 1, y if flag == 0, without branching.
func ctSelect(flag uint64, x, y *fe) fe {
	var z fe
	z = *y
	z.cmov(x, flag)
	return z
}

// reduceOnce subtracts p from x once if x >= p, leaving x unchanged
// otherwise. Used after an operation that may produce a result in [0, 2p).
func reduceOnce(z *fe) {
	var t fe
	borrow := sub4(&t, z, &fieldP)
	// borrow == 1 means z < p, so keep z; borrow == 0 means z >= p, use t.
	z.cmov(&t, 1^borrow)
}

// Add computes z = x + y mod p.
func (z *fe) Add(x, y *fe) {
	var sum fe
	carry := add4(&sum, x, y)
	var diff fe
	borrow := sub4(&diff, &sum, &fieldP)
	// Use diff (sum - p) when the addition overflowed 256 bits (carry == 1)
	// or when sum >= p without overflowing (borrow == 0).
	use := carry | (1 ^ borrow)
	sum.cmov(&diff, use)
	*z = sum
}

// Sub computes z = x - y mod p.
func (z *fe) Sub(x, y *fe) {
	var diff fe
	borrow := sub4(&diff, x, y)
	var plusP fe
	add4(&plusP, &diff, &fieldP)
	diff.cmov(&plusP, borrow)
	*z = diff
}

// Neg computes z = -x mod p.
func (z *fe) Neg(x *fe) {
	z.Sub(&feZero, x)
}

// Double computes z = 2x mod p.
func (z *fe) Double(x *fe) {
	z.Add(x, x)
}

// Triple computes z = 3x mod p.
func (z *fe) Triple(x *fe) {
	var t fe
	t.Double(x)
	z.Add(&t, x)
}

// Halve computes z = x/2 mod p, i.e. the field element h with 2h = x.
func (z *fe) Halve(x *fe) {
	odd := x[0] & 1
	var shifted fe
	var withP fe
	carry := add4(&withP, x, &fieldP)
	chosen := ctSelect(odd, &withP, x)
	topBit := carry & odd

	shifted[0] = (chosen[0] >> 1) | (chosen[1] << 63)
	shifted[1] = (chosen[1] >> 1) | (chosen[2] << 63)
	shifted[2] = (chosen[2] >> 1) | (chosen[3] << 63)
	shifted[3] = (chosen[3] >> 1) | (topBit << 63)
	*z = shifted
}

// IsZero reports whether x represents the zero residue, in constant time.
func (x *fe) IsZero() bool {
	return (x[0] | x[1] | x[2] | x[3]) == 0
}

// Equal reports whether x and y represent the same residue, in constant time.
func (x *fe) Equal(y *fe) bool {
	return ((x[0] ^ y[0]) | (x[1] ^ y[1]) | (x[2] ^ y[2]) | (x[3] ^ y[3])) == 0
}

// ToMontgomery converts x from a plain residue in [0, p) to Montgomery form.
func (z *fe) ToMontgomery(x *fe) {
	z.MulMont(x, &feR2)
}

// FromMontgomery converts x from Montgomery form to a plain residue in [0, p).
func (z *fe) FromMontgomery(x *fe) {
	// Multiplying by a plain 1 (not feOne, which is R mod p) leaves x·R⁻¹.
	plainOne := fe{1, 0, 0, 0}
	z.MulMont(x, &plainOne)
}

// SetBytes sets z to the big-endian 32-byte encoding of a plain (non-Montgomery)
// residue, reducing modulo p if the encoded value is out of range. The
// reduction is a branch-free conditional subtraction; only the input length
// is checked with a branch, and a length other than 32 yields ErrOutOfRange.
func (z *fe) SetBytes(b []byte) error {
	if len(b) != 32 {
		return ErrOutOfRange
	}
	var x fe
	for i := 0; i < 4; i++ {
		off := 24 - 8*i
		x[i] = beUint64(b[off : off+8])
	}
	var reduced fe
	borrow := sub4(&reduced, &x, &fieldP)
	x.cmov(&reduced, 1^borrow)
	*z = x
	return nil
}

// Bytes returns the big-endian 32-byte encoding of the plain residue x
// represents (x must already be a plain, non-Montgomery value in [0, p)).
func (x *fe) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		off := 24 - 8*i
		putBeUint64(out[off:off+8], x[i])
	}
	return out
}

func beUint64(b []byte) uint64 {
	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}

// fieldPBig is fieldP as a *big.Int, used only at the *big.Int boundary
// (OutOfRange checks, encode/decode); never on a code path with a secret
// field element, since big.Int arithmetic is not constant-time.
var fieldPBig, _ = new(big.Int).SetString(
	"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)

// feFromBigInt converts a non-negative value to a plain (non-Montgomery)
// fe, reducing modulo p via SetBytes if v is out of range. Callers at the
// public boundary should range-check v against fieldPBig first and report
// ErrOutOfRange themselves rather than relying on this silent reduction.
func feFromBigInt(v *big.Int) fe {
	var buf [32]byte
	b := v.Bytes()
	copy(buf[32-len(b):], b)
	var x fe
	_ = x.SetBytes(buf[:])
	return x
}

// feToBigInt decodes a plain (non-Montgomery) fe in [0, p) to a *big.Int.
func feToBigInt(x *fe) *big.Int {
	b := x.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func putBeUint64(b []byte, v uint64) {
	b[7] = byte(v)
	b[6] = byte(v >> 8)
	b[5] = byte(v >> 16)
	b[4] = byte(v >> 24)
	b[3] = byte(v >> 32)
	b[2] = byte(v >> 40)
	b[1] = byte(v >> 48)
	b[0] = byte(v >> 56)
}
