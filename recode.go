package p256

// boothDigit packs a Booth-recoded signed digit: bit 0 is the sign
// (1 = negative), the remaining bits are the magnitude.
type boothDigit uint32

// boothRecode implements Booth window(w) recoding: given a
// (w+1)-bit unsigned window value in, where bit 0 is the carry-in from the
// next (lower) window and bit w is the window's own top bit, which selects
// the negative branch, produces a signed digit in
// [-2^(w-1), 2^(w-1)]. Both candidates for d' are always computed and
// combined with the mask s; there is no branch on in's value.
//
//	s  = -(in >> w)                         // all-ones if bit w is set
//	d' = ((1<<(w+1)) - 1 - in) if s else in
//	d  = (d' >> 1) + (d' & 1)
//	return (d << 1) | (s & 1)
func boothRecode(w uint, in uint32) boothDigit {
	s := uint32(0) - (in >> w)
	alt := (uint32(1)<<(w+1) - 1) - in
	dprime := (alt & s) | (in &^ s)
	d := (dprime >> 1) + (dprime & 1)
	return boothDigit((d << 1) | (s & 1))
}

// magnitude returns the digit's unsigned magnitude, in [0, 2^(w-1)].
func (d boothDigit) magnitude() uint32 {
	return uint32(d) >> 1
}

// sign returns 1 if the digit is negative, 0 if non-negative.
func (d boothDigit) sign() uint32 {
	return uint32(d) & 1
}

// isZeroFlag32 is isZeroFlag lifted to 32-bit comparisons, used by the
// table-select routines below.
func isZeroFlag32(v uint32) uint64 {
	return isZeroFlag(uint64(v))
}

// selectJacobian is a constant-time table select over a table of Jacobian
// points: table[i] holds the (i+1)-th multiple of some
// point. Every row is scanned and conditionally folded in via cmov
// regardless of idx; idx == 0 (never matched by any row) yields the
// identity the accumulator was initialized to.
func selectJacobian(table []JacobianPoint, idx uint32) JacobianPoint {
	var out JacobianPoint
	out.SetInfinity()
	for i := range table {
		flag := isZeroFlag32(idx ^ uint32(i+1))
		out.cmov(&table[i], flag)
	}
	return out
}

// selectAffine is selectJacobian's affine analogue, used against rows of
// the precomputed generator table.
func selectAffine(table []AffinePoint, idx uint32) AffinePoint {
	var out AffinePoint
	for i := range table {
		flag := isZeroFlag32(idx ^ uint32(i+1))
		out.cmov(&table[i], flag)
	}
	return out
}

// condNegateY overwrites p's Y with its negation when sign == 1, leaves it
// untouched when sign == 0. The negation is always computed; only the
// cmov is conditional.
func (p *JacobianPoint) condNegateY(sign uint32) {
	var negY fe
	negY.Neg(&p.y)
	p.y.cmov(&negY, uint64(sign))
}

// condNegateY is condNegateY's affine analogue.
func (p *AffinePoint) condNegateY(sign uint32) {
	var negY fe
	negY.Neg(&p.y)
	p.y.cmov(&negY, uint64(sign))
}
