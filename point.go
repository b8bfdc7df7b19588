package p256

// AffinePoint is a curve point in affine coordinates (x, y), held in the
// Montgomery domain. It has no representation for the point at infinity:
// operations that would produce infinity return ErrPointAtInfinity instead.
type AffinePoint struct {
	x, y fe
}

// JacobianPoint is a curve point in Jacobian projective coordinates
// (X, Y, Z), representing the affine point (X/Z², Y/Z³). Z == 0 represents
// the point at infinity; when Z == 0, X and Y carry no meaning and must not
// be inspected.
type JacobianPoint struct {
	x, y, z fe
}

// SetInfinity sets p to the point at infinity.
func (p *JacobianPoint) SetInfinity() {
	p.x = feOne
	p.y = feOne
	p.z = feZero
}

// FromAffine lifts an affine point into Jacobian coordinates with Z = 1.
func (p *JacobianPoint) FromAffine(a *AffinePoint) {
	p.x = a.x
	p.y = a.y
	p.z = feOne
}

// cmov sets p = a if flag == 1, leaves p unchanged if flag == 0.
func (p *JacobianPoint) cmov(a *JacobianPoint, flag uint64) {
	p.x.cmov(&a.x, flag)
	p.y.cmov(&a.y, flag)
	p.z.cmov(&a.z, flag)
}

// Neg sets p to the affine negation of a: same x, negated y.
func (p *AffinePoint) Neg(a *AffinePoint) {
	p.x = a.x
	p.y.Neg(&a.y)
}

// cmov sets p = a if flag == 1, leaves p unchanged if flag == 0.
func (p *AffinePoint) cmov(a *AffinePoint, flag uint64) {
	p.x.cmov(&a.x, flag)
	p.y.cmov(&a.y, flag)
}

// Double sets r to 2p, using the complete Jacobian doubling formula for
// curves with a = -3 (dbl-2001-b). When p.z is zero this produces a Z = 0
// result without any special case: the formula's Z3 term works out to
// 2·Y·Z, which carries a factor of p.z, so infinity maps to infinity for free.
func (r *JacobianPoint) Double(p *JacobianPoint) {
	var delta, gamma, beta fe
	delta.SqrMont(&p.z)
	gamma.SqrMont(&p.y)
	beta.MulMont(&p.x, &gamma)

	var t0, t1, t2, alpha fe
	t0.Sub(&p.x, &delta)
	t1.Add(&p.x, &delta)
	t2.MulMont(&t0, &t1)
	alpha.Triple(&t2)

	var x3 fe
	x3.SqrMont(&alpha)
	var eightBeta fe
	eightBeta.Double(&beta)
	eightBeta.Double(&eightBeta)
	eightBeta.Double(&eightBeta)
	x3.Sub(&x3, &eightBeta)

	var z3 fe
	z3.Add(&p.y, &p.z)
	z3.SqrMont(&z3)
	z3.Sub(&z3, &gamma)
	z3.Sub(&z3, &delta)

	var fourBeta, t3 fe
	fourBeta.Double(&beta)
	fourBeta.Double(&fourBeta)
	t3.Sub(&fourBeta, &x3)
	var y3 fe
	y3.MulMont(&alpha, &t3)
	var gammaSq, eightGammaSq fe
	gammaSq.SqrMont(&gamma)
	eightGammaSq.Double(&gammaSq)
	eightGammaSq.Double(&eightGammaSq)
	eightGammaSq.Double(&eightGammaSq)
	y3.Sub(&y3, &eightGammaSq)

	r.x = x3
	r.y = y3
	r.z = z3
}

// Add sets r to p + q, handling the three exceptional inputs — p at
// infinity, q at infinity, and p == q (which the general formula alone
// cannot resolve into a doubling) — by always computing the general-case
// sum, the doubled point, and both operands, then selecting among them with
// branch-free masks. The general formula (add-2007-bl) correctly yields a
// Z = 0 result on its own when p == -q, so that case needs no mask.
func (r *JacobianPoint) Add(p, q *JacobianPoint) {
	var z1z1, z2z2 fe
	z1z1.SqrMont(&p.z)
	z2z2.SqrMont(&q.z)

	var u1, u2 fe
	u1.MulMont(&p.x, &z2z2)
	u2.MulMont(&q.x, &z1z1)

	var s1, s2, t0 fe
	t0.MulMont(&q.z, &z2z2)
	s1.MulMont(&p.y, &t0)
	t0.MulMont(&p.z, &z1z1)
	s2.MulMont(&q.y, &t0)

	var h, hh, i, j fe
	h.Sub(&u2, &u1)
	hh.Double(&h)
	i.SqrMont(&hh)
	j.MulMont(&h, &i)

	var rr, v fe
	var s2s1 fe
	s2s1.Sub(&s2, &s1)
	rr.Double(&s2s1)
	v.MulMont(&u1, &i)

	var x3 fe
	x3.SqrMont(&rr)
	x3.Sub(&x3, &j)
	var v2 fe
	v2.Double(&v)
	x3.Sub(&x3, &v2)

	var y3, vx3 fe
	vx3.Sub(&v, &x3)
	y3.MulMont(&rr, &vx3)
	var s1j, s1j2 fe
	s1j.MulMont(&s1, &j)
	s1j2.Double(&s1j)
	y3.Sub(&y3, &s1j2)

	var z3, zsum fe
	zsum.Add(&p.z, &q.z)
	zsum.SqrMont(&zsum)
	zsum.Sub(&zsum, &z1z1)
	zsum.Sub(&zsum, &z2z2)
	z3.MulMont(&zsum, &h)

	var addResult JacobianPoint
	addResult.x, addResult.y, addResult.z = x3, y3, z3

	var doubled JacobianPoint
	doubled.Double(p)

	isInf1 := p.z.IsZeroFlag()
	isInf2 := q.z.IsZeroFlag()
	sameX := u1.EqualFlag(&u2)
	sameY := s1.EqualFlag(&s2)
	isDbl := sameX & sameY & (1 ^ isInf1) & (1 ^ isInf2)

	result := addResult
	result.cmov(&doubled, isDbl)
	result.cmov(q, isInf1)
	result.cmov(p, isInf2)
	*r = result
}

// AddMixed sets r to p + q where q is an affine point (implicit Z = 1).
// Handles p at infinity and p == q the same way Add does; q is never
// infinity, since AffinePoint has no such representation.
func (r *JacobianPoint) AddMixed(p *JacobianPoint, q *AffinePoint) {
	var z1z1 fe
	z1z1.SqrMont(&p.z)

	var u2, s2, t0 fe
	u2.MulMont(&q.x, &z1z1)
	t0.MulMont(&p.z, &z1z1)
	s2.MulMont(&q.y, &t0)

	var h, hh, i, j fe
	h.Sub(&u2, &p.x)
	hh.SqrMont(&h)
	i.Double(&hh)
	i.Double(&i)
	j.MulMont(&h, &i)

	var rr, v fe
	var s2y1 fe
	s2y1.Sub(&s2, &p.y)
	rr.Double(&s2y1)
	v.MulMont(&p.x, &i)

	var x3 fe
	x3.SqrMont(&rr)
	x3.Sub(&x3, &j)
	var v2 fe
	v2.Double(&v)
	x3.Sub(&x3, &v2)

	var y3, vx3 fe
	vx3.Sub(&v, &x3)
	y3.MulMont(&rr, &vx3)
	var y1j, y1j2 fe
	y1j.MulMont(&p.y, &j)
	y1j2.Double(&y1j)
	y3.Sub(&y3, &y1j2)

	var z3, zh fe
	zh.Add(&p.z, &h)
	zh.SqrMont(&zh)
	zh.Sub(&zh, &z1z1)
	z3.Sub(&zh, &hh)

	var addResult JacobianPoint
	addResult.x, addResult.y, addResult.z = x3, y3, z3

	var doubled JacobianPoint
	doubled.Double(p)

	var qJac JacobianPoint
	qJac.FromAffine(q)

	isInf1 := p.z.IsZeroFlag()
	sameX := u2.EqualFlag(&p.x)
	sameY := s2.EqualFlag(&p.y)
	isDbl := sameX & sameY & (1 ^ isInf1)

	result := addResult
	result.cmov(&doubled, isDbl)
	result.cmov(&qJac, isInf1)
	*r = result
}

// ToAffine converts p to affine coordinates, returning ErrPointAtInfinity
// if p is the point at infinity. Inversion of p.z is the one operation here
// whose argument is a coordinate, not a secret scalar; spec callers that
// need to keep Z itself secret must check for infinity before calling this.
func (p *JacobianPoint) ToAffine() (*AffinePoint, error) {
	if p.z.IsZero() {
		return nil, ErrPointAtInfinity
	}
	var zInv, zInv2, zInv3 fe
	zInv.Invert(&p.z)
	zInv2.SqrMont(&zInv)
	zInv3.MulMont(&zInv2, &zInv)

	var out AffinePoint
	out.x.MulMont(&p.x, &zInv2)
	out.y.MulMont(&p.y, &zInv3)
	return &out, nil
}
