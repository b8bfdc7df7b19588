package p256

import "math/big"

// maxVarBaseTerms bounds the number of variable-base terms the combinator
// will build tables for, so the term-count arithmetic below cannot
// overflow when the generator is appended as an extra term.
const maxVarBaseTerms = 1 << 24

// ScalarBaseMult computes k·G for the standard P-256 generator via the
// fixed-base comb ladder, the fast path ScalarMult takes whenever the
// generator matches the precomputed one.
func ScalarBaseMult(k *big.Int) (*JacobianPoint, error) {
	r, err := fixedBaseMult(k)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ScalarMult computes k·G + Σ kᵢ·Pᵢ as a single Jacobian point.
//
//   - curve may be nil only if k is nil (no generator term is needed).
//   - k may be nil, meaning no generator term.
//   - points and scalars must have equal length; len(points) == 0 with a
//     non-nil k is valid (a pure k·G call through the general entrypoint).
//
// The result is returned without any normalization to affine; call
// ToAffine on it separately.
func ScalarMult(curve *Curve, k *big.Int, points []*AffinePoint, scalars []*big.Int) (*JacobianPoint, error) {
	if len(points) != len(scalars) {
		return nil, ErrAllocationFailure
	}
	if k == nil && len(points) == 0 {
		var inf JacobianPoint
		inf.SetInfinity()
		return &inf, nil
	}
	if len(points) > maxVarBaseTerms {
		return nil, ErrAllocationFailure
	}

	var (
		haveGTerm  bool
		gTerm      JacobianPoint
		varPoints  = points
		varScalars = scalars
	)

	if k != nil {
		if curve != nil && matchesStandardGenerator(curve.Generator) {
			var err error
			gTerm, err = fixedBaseMult(k)
			if err != nil {
				return nil, err
			}
			haveGTerm = true
		} else {
			if curve == nil || curve.Generator == nil {
				return nil, ErrUndefinedGenerator
			}
			if len(varPoints)+1 > maxVarBaseTerms {
				return nil, ErrAllocationFailure
			}
			varPoints = append(append([]*AffinePoint{}, points...), curve.Generator)
			varScalars = append(append([]*big.Int{}, scalars...), k)
		}
	}

	var (
		haveVarTerm bool
		varTerm     JacobianPoint
	)
	if len(varPoints) > 0 {
		terms, err := newVarBaseTerms(varScalars, varPoints)
		if err != nil {
			return nil, err
		}
		varTerm = varBaseMult(terms)
		haveVarTerm = true
	}

	switch {
	case haveGTerm && haveVarTerm:
		var sum JacobianPoint
		sum.Add(&gTerm, &varTerm)
		return &sum, nil
	case haveGTerm:
		return &gTerm, nil
	case haveVarTerm:
		return &varTerm, nil
	default:
		var inf JacobianPoint
		inf.SetInfinity()
		return &inf, nil
	}
}
