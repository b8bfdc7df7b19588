package p256

import "math/big"

// curveOrderN is the order n of the P-256 generator's cyclic subgroup:
//
//	n = 0xffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551
//
// Scalars are reduced modulo this value before being fed to either ladder.
var curveOrderN, _ = new(big.Int).SetString(
	"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)

// scalarBytes is the 33-byte little-endian serialization of a scalar used
// by both ladders: byte 0 holds bits [0,8), ..., and the extra 33rd byte
// (always zero, since a reduced scalar is at most 256 bits) lets the w=5
// window reader in varbase.go read a 2-byte field at any 5-bit boundary up
// to bit 255 without a bounds check.
type scalarBytes [33]byte

// newScalarBytes reduces k modulo the curve order (if it is negative or not
// below n) and serializes the result as 33 little-endian bytes.
// Reduction itself is ordinary big.Int arithmetic, done once at the
// boundary before a scalar enters the constant-time ladders; it is not
// itself held to their constant-time discipline.
func newScalarBytes(k *big.Int) (scalarBytes, error) {
	if k == nil {
		return scalarBytes{}, ErrOutOfRange
	}
	v := k
	if v.Sign() < 0 || v.BitLen() > 256 || v.Cmp(curveOrderN) >= 0 {
		v = new(big.Int).Mod(k, curveOrderN)
	}
	b := v.Bytes() // big-endian, no leading zeros
	var out scalarBytes
	for i, bb := range b {
		out[len(b)-1-i] = bb
	}
	return out, nil
}

// bytePair returns byte[off] | byte[off+1]<<8 as a 16-bit window. There is
// no bounds check: off must be at most 31 (off+1 reaches 32 when reading the
// topmost w=5 window, which is within the 33-byte buffer).
func (s *scalarBytes) bytePair(off int) uint32 {
	return uint32(s[off]) | uint32(s[off+1])<<8
}
