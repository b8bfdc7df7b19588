package p256

import "math/big"

// MontgomeryFieldMethod bundles the Montgomery-domain field boundary
// operations. Values move across this boundary as plain *big.Int residues
// in [0, p); inside it they are 4x64-limb Montgomery-form elements. Every
// function range-checks its inputs and returns ErrOutOfRange rather than
// silently reducing, since a caller handing this method an out-of-range
// residue has a bug worth surfacing.
type MontgomeryFieldMethod struct {
	// Encode converts a plain residue to Montgomery form: x -> x·R mod p.
	Encode func(x *big.Int) (*big.Int, error)
	// Decode converts a Montgomery-form value back to a plain residue:
	// x -> x·R⁻¹ mod p.
	Decode func(x *big.Int) (*big.Int, error)
	// Mul computes the Montgomery product a·b·R⁻¹ mod p.
	Mul func(a, b *big.Int) (*big.Int, error)
	// Sqr computes the Montgomery square x·x·R⁻¹ mod p.
	Sqr func(x *big.Int) (*big.Int, error)
}

// Method is the full operation set this package exposes to an embedding,
// aggregating scalar multiplication and affine conversion with the field
// boundary routines — the "one value that names everything the group can
// do" shape an embedding registers rather than importing entrypoints
// piecemeal.
type Method struct {
	Mul      func(curve *Curve, k *big.Int, points []*AffinePoint, scalars []*big.Int) (*JacobianPoint, error)
	ToAffine func(p *JacobianPoint) (x, y *big.Int, err error)
	Field    MontgomeryFieldMethod
}

// DefaultMethod returns the Method descriptor for this package's
// implementation.
func DefaultMethod() *Method {
	return &Method{
		Mul:      ScalarMult,
		ToAffine: ToAffine,
		Field: MontgomeryFieldMethod{
			Encode: fieldEncode,
			Decode: fieldDecode,
			Mul:    fieldMulBoundary,
			Sqr:    fieldSqrBoundary,
		},
	}
}

func checkedFe(x *big.Int) (fe, error) {
	if x == nil || x.Sign() < 0 || x.Cmp(fieldPBig) >= 0 {
		return fe{}, ErrOutOfRange
	}
	return feFromBigInt(x), nil
}

func fieldEncode(x *big.Int) (*big.Int, error) {
	v, err := checkedFe(x)
	if err != nil {
		return nil, err
	}
	var m fe
	m.ToMontgomery(&v)
	return feToBigInt(&m), nil
}

func fieldDecode(x *big.Int) (*big.Int, error) {
	v, err := checkedFe(x)
	if err != nil {
		return nil, err
	}
	var plain fe
	plain.FromMontgomery(&v)
	return feToBigInt(&plain), nil
}

func fieldMulBoundary(a, b *big.Int) (*big.Int, error) {
	va, err := checkedFe(a)
	if err != nil {
		return nil, err
	}
	vb, err := checkedFe(b)
	if err != nil {
		return nil, err
	}
	var prod fe
	prod.MulMont(&va, &vb)
	return feToBigInt(&prod), nil
}

func fieldSqrBoundary(x *big.Int) (*big.Int, error) {
	v, err := checkedFe(x)
	if err != nil {
		return nil, err
	}
	var sq fe
	sq.SqrMont(&v)
	return feToBigInt(&sq), nil
}
