package p256

import "math/big"

// ToAffine converts a Jacobian point to plain big-endian affine coordinates
// (Z⁻¹, then Z⁻², Z⁻³, x = X·Z⁻², y = Y·Z⁻³, decoded out of the Montgomery
// domain). It returns ErrPointAtInfinity if p is the point at infinity,
// which has no affine representation.
func ToAffine(p *JacobianPoint) (x, y *big.Int, err error) {
	a, err := p.ToAffine()
	if err != nil {
		return nil, nil, err
	}
	px, py := a.Coordinates()
	return px, py, nil
}
