package p256

// isZeroFlag returns 1 if v == 0, 0 otherwise, without branching: the
// standard (v | -v) >> 63 trick puts a 1 in the top bit of the OR iff v is
// nonzero, for every v including the single-bit edge case v == 2^63.
func isZeroFlag(v uint64) uint64 {
	nz := (v | (-v)) >> 63
	return nz ^ 1
}

// IsZeroFlag returns 1 if x is the zero residue, 0 otherwise.
func (x *fe) IsZeroFlag() uint64 {
	return isZeroFlag(x[0] | x[1] | x[2] | x[3])
}

// EqualFlag returns 1 if x and y represent the same residue, 0 otherwise.
func (x *fe) EqualFlag(y *fe) uint64 {
	return isZeroFlag((x[0] ^ y[0]) | (x[1] ^ y[1]) | (x[2] ^ y[2]) | (x[3] ^ y[3]))
}
