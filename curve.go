package p256

import "math/big"

// NewAffinePoint builds an AffinePoint from plain big-endian coordinates,
// converting them to the Montgomery domain. It returns ErrOutOfRange if
// either coordinate does not fit in [0, p).
func NewAffinePoint(x, y *big.Int) (*AffinePoint, error) {
	if x == nil || y == nil || x.Sign() < 0 || y.Sign() < 0 ||
		x.Cmp(fieldPBig) >= 0 || y.Cmp(fieldPBig) >= 0 {
		return nil, ErrOutOfRange
	}
	var p AffinePoint
	plainX, plainY := feFromBigInt(x), feFromBigInt(y)
	p.x.ToMontgomery(&plainX)
	p.y.ToMontgomery(&plainY)
	return &p, nil
}

// Coordinates decodes p back to plain big-endian coordinates.
func (p *AffinePoint) Coordinates() (x, y *big.Int) {
	var plainX, plainY fe
	plainX.FromMontgomery(&p.x)
	plainY.FromMontgomery(&p.y)
	return feToBigInt(&plainX), feToBigInt(&plainY)
}

// equal reports whether p and q represent the same affine point, in
// constant time — used only by the generator-match check below, which
// compares a caller-supplied point against a fixed public constant and so
// has no secret-dependent branch to worry about regardless.
func (p *AffinePoint) equal(q *AffinePoint) bool {
	return p.x.Equal(&q.x) && p.y.Equal(&q.y)
}

// Curve is the minimal group/curve metadata object the combinator needs:
// just enough to find the generator and the order scalars are reduced
// against. It intentionally does not replicate crypto/elliptic.Curve.
type Curve struct {
	Generator *AffinePoint
	Order     *big.Int
}

// StandardCurve returns the Curve descriptor for the standard NIST P-256
// generator and order — the "group object" most callers will pass to
// ScalarMult.
func StandardCurve() *Curve {
	ensureGeneratorTable()
	return &Curve{Generator: &generatorAffine, Order: curveOrderN}
}

// matchesStandardGenerator reports whether g is exactly the precomputed
// generator this package's fixed-base table was built from: a pure value
// comparison against two hard-coded field elements. If it fails, the
// caller's generator must be treated as an ordinary variable-base point.
func matchesStandardGenerator(g *AffinePoint) bool {
	ensureGeneratorTable()
	if g == nil {
		return false
	}
	return g.equal(&generatorAffine)
}
