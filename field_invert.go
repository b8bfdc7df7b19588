package p256

// Invert computes z = x^-1 mod p via Fermat's little theorem, x^(p-2), using
// a fixed addition chain built from the P-256 prime's binary shape:
//
//	p - 2 = 0xffffffff 00000001 00000000 00000000 00000000 ffffffff ffffffff fffffffd
//
// read as runs of bits (MSB first): 32 ones, 31 zeros, 1 one, 96 zeros,
// 94 ones, 1 zero, 1 one. The chain first builds x^(2^k-1) for
// k ∈ {2,4,8,16,32} (31 squarings, 5 multiplications), then walks the run
// list above, squaring through zero runs and, for each one-run, squaring to
// make room and multiplying in the largest available precomputed chunk
// (repeating for runs longer than 32) — 224 more squarings and 8 more
// multiplications, 255 and 13 in total. The chain is fixed independent of
// x: every call does exactly the same sequence of squarings and
// multiplications, so there is nothing for a timing or cache-access
// observer to learn from which branch ran.
//
// Invert returns 0 (in Montgomery form) iff x is 0; callers that need to
// invert a coordinate must check for the point at infinity first, since
// infinity's Z is legitimately zero and inversion of it is meaningless to
// the caller even though this routine will not panic on it.
func (z *fe) Invert(x *fe) {
	var e2, e4, e8, e16, e32 fe

	// x^(2^2-1) = x^3
	e2.SqrMont(x)
	e2.MulMont(&e2, x)

	// x^(2^4-1)
	sqrN(&e4, &e2, 2)
	e4.MulMont(&e4, &e2)

	// x^(2^8-1)
	sqrN(&e8, &e4, 4)
	e8.MulMont(&e8, &e4)

	// x^(2^16-1)
	sqrN(&e16, &e8, 8)
	e16.MulMont(&e16, &e8)

	// x^(2^32-1)
	sqrN(&e32, &e16, 16)
	e32.MulMont(&e32, &e16)

	acc := e32

	// 31 zeros
	sqrN(&acc, &acc, 31)

	// 1 one
	acc.SqrMont(&acc)
	acc.MulMont(&acc, x)

	// 96 zeros
	sqrN(&acc, &acc, 96)

	// 94 ones, built from chunks 32+32+16+8+4+2
	sqrN(&acc, &acc, 32)
	acc.MulMont(&acc, &e32)
	sqrN(&acc, &acc, 32)
	acc.MulMont(&acc, &e32)
	sqrN(&acc, &acc, 16)
	acc.MulMont(&acc, &e16)
	sqrN(&acc, &acc, 8)
	acc.MulMont(&acc, &e8)
	sqrN(&acc, &acc, 4)
	acc.MulMont(&acc, &e4)
	sqrN(&acc, &acc, 2)
	acc.MulMont(&acc, &e2)

	// 1 zero
	acc.SqrMont(&acc)

	// 1 one
	acc.SqrMont(&acc)
	acc.MulMont(&acc, x)

	*z = acc
}

// sqrN sets z = x squared n times in a row (a fixed, compile-time-known
// iteration count — never dependent on field contents).
func sqrN(z *fe, x *fe, n int) {
	t := *x
	for i := 0; i < n; i++ {
		t.SqrMont(&t)
	}
	*z = t
}
