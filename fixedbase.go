package p256

import "math/big"

// fbWindowAt extracts the 8-bit Booth-recoding input for row i (i >= 1) of
// the fixed-base comb ladder: an 8-bit read starting at bit 7i-1, so bit
// 7i-1 (the top bit of row i-1's own 7-bit range, already processed) is
// reused as this window's carry-in, and bits [7i, 7i+6] are this window's
// own 7 bits.
func (s *scalarBytes) fbWindowAt(i int) uint32 {
	pos := 7*i - 1
	off := pos / 8
	shift := uint(pos % 8)
	return (s.bytePair(off) >> shift) & 0xff
}

// fbFirstWindow extracts row 0's window: bits [0,7) of the scalar shifted
// up by one bit so the synthetic carry-in is zero, since there is no row
// below 0 to supply a real one.
func (s *scalarBytes) fbFirstWindow() uint32 {
	return (uint32(s[0]) << 1) & 0xff
}

// fixedBaseMult runs the fixed-base comb ladder: for a scalar whose point
// is exactly the precomputed generator, walk the 37
// precomputed rows from the lowest bit position to the highest, selecting
// and accumulating one term per row via mixed addition. No doublings are
// needed between rows, since every row is already pre-shifted by its own
// power of 2^7 — this is what makes the fixed-base ladder cheaper than the
// variable-base one.
func fixedBaseMult(k *big.Int) (JacobianPoint, error) {
	ensureGeneratorTable()

	sc, err := newScalarBytes(k)
	if err != nil {
		return JacobianPoint{}, err
	}

	var r JacobianPoint
	var inf JacobianPoint
	inf.SetInfinity()

	for i := 0; i < fixedBaseRows; i++ {
		var wv uint32
		if i == 0 {
			wv = sc.fbFirstWindow()
		} else {
			wv = sc.fbWindowAt(i)
		}

		digit := boothRecode(fixedBaseWindow, wv)
		sel := selectAffine(generatorTable.rows[i][:], digit.magnitude())
		sel.condNegateY(digit.sign())
		isZeroDigit := isZeroFlag32(digit.magnitude())

		if i == 0 {
			r.FromAffine(&sel)
			r.cmov(&inf, isZeroDigit)
			continue
		}

		var added JacobianPoint
		added.AddMixed(&r, &sel)
		added.cmov(&r, isZeroDigit)
		r = added
	}

	return r, nil
}
