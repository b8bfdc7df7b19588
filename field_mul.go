package p256

import "math/bits"

// MulMont computes z = x·y·R⁻¹ mod p (the Montgomery product). If x and y
// are both in Montgomery form (a·R, b·R), the result is (a·b)·R mod p, i.e.
// the Montgomery form of a·b — exactly what callers need to chain
// Montgomery-domain multiplications without ever leaving the domain.
func (z *fe) MulMont(x, y *fe) {
	var t [9]uint64
	mulWide(&t, x, y)
	montReduce(z, &t)
}

// SqrMont computes z = x·x·R⁻¹ mod p. Implemented as a call into the
// general multiply: a dedicated squaring routine saves roughly a third of
// the partial-product computations on assembly backends, but this portable
// fallback produces an identical result and squaring is not on any
// constant-time-sensitive branch.
func (z *fe) SqrMont(x *fe) {
	z.MulMont(x, x)
}

// mulWide computes the full 512-bit product of two field elements (treated
// as plain 256-bit integers, not reduced mod p) into a 9-limb little-endian
// accumulator; t[8] starts at zero headroom for montReduce's carry chain.
func mulWide(t *[9]uint64, x, y *fe) {
	var prod [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			lo, c1 := bits.Add64(lo, prod[i+j], 0)
			hi, c2 := bits.Add64(hi, 0, c1)
			lo, c3 := bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c3)
			prod[i+j] = lo
			carry = hi + c2
		}
		prod[i+4] = carry
	}
	for i := 0; i < 8; i++ {
		t[i] = prod[i]
	}
	t[8] = 0
}

// montReduce performs Montgomery reduction (REDC) on the 512-bit value held
// in t, producing a fully reduced field element in [0, p). t is consumed;
// its first 8 limbs must hold the wide product and t[8] must be zero on
// entry. The product is formed in full by mulWide before this runs, so
// multiplication and reduction are separate passes (separated operand
// scanning), not interleaved as in the CIOS method.
func montReduce(z *fe, t *[9]uint64) {
	for i := 0; i < 4; i++ {
		m := t[i] * feP0Prime

		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(m, fieldP[j])
			lo, c1 := bits.Add64(lo, t[i+j], 0)
			hi, c2 := bits.Add64(hi, 0, c1)
			lo, c3 := bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c3)
			t[i+j] = lo
			carry = hi + c2
		}
		// Propagate the remaining carry into the untouched high limbs. The
		// number of limbs left (5-i, since t has 9 total and i+4 have been
		// consumed) is fixed at compile time, not data-dependent: always
		// walk all of them rather than stopping early when carry hits zero.
		for k := i + 4; k < 9; k++ {
			var c uint64
			t[k], c = bits.Add64(t[k], carry, 0)
			carry = c
		}
	}

	var result fe
	result[0], result[1], result[2], result[3] = t[4], t[5], t[6], t[7]
	// t[8] holds at most a single extra bit: the REDC bound keeps the
	// reduced value below 2p, and 2p < 2^257, so t[8] is
	// exactly 0 or 1 here — never branch on it, just fold it into the same
	// conditional-subtract mask used for the ordinary overflow case.
	var reduced fe
	borrow := sub4(&reduced, &result, &fieldP)
	result.cmov(&reduced, t[8]|(1^borrow))
	*z = result
}
