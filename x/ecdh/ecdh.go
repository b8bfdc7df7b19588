// Package ecdh is a minimal example consumer of p256ct.dev, demonstrating
// Diffie-Hellman key agreement over the package's scalar-multiplication
// core. Nothing under p256ct.dev imports this package, and nothing here is
// constant-time-audited beyond what calling into p256ct.dev already
// guarantees.
package ecdh

import (
	"errors"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	p256 "p256ct.dev"
)

// ErrInvalidPeerPoint is returned when the peer's public point does not lie
// on the curve or is otherwise unusable as an ECDH input.
var ErrInvalidPeerPoint = errors.New("ecdh: invalid peer public point")

// SharedSecret computes the ECDH shared secret between a local private
// scalar d and a peer's public point (px, py): it runs d·P through
// p256ct.dev's combinator, converts the result to affine, and derives a
// 32-byte secret by hashing the shared point's x-coordinate with
// SHA-256 via github.com/minio/sha256-simd.
func SharedSecret(d *big.Int, px, py *big.Int) ([32]byte, error) {
	peer, err := p256.NewAffinePoint(px, py)
	if err != nil {
		return [32]byte{}, ErrInvalidPeerPoint
	}
	// Reject points that do not satisfy y² = x³ − 3x + b (mod p).
	fp, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	b, _ := new(big.Int).SetString("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	lhs := new(big.Int).Mul(py, py)
	rhs := new(big.Int).Mul(px, px)
	rhs.Mul(rhs, px).Sub(rhs, new(big.Int).Mul(big.NewInt(3), px)).Add(rhs, b)
	if lhs.Mod(lhs, fp).Cmp(rhs.Mod(rhs, fp)) != 0 {
		return [32]byte{}, ErrInvalidPeerPoint
	}

	product, err := p256.ScalarMult(nil, nil, []*p256.AffinePoint{peer}, []*big.Int{d})
	if err != nil {
		return [32]byte{}, err
	}

	x, _, err := p256.ToAffine(product)
	if err != nil {
		return [32]byte{}, err
	}

	return sha256simd.Sum256(x.Bytes()), nil
}

// PublicKey computes the public point d·G for a local private scalar d,
// using the fixed-base ladder via ScalarBaseMult.
func PublicKey(d *big.Int) (x, y *big.Int, err error) {
	pub, err := p256.ScalarBaseMult(d)
	if err != nil {
		return nil, nil, err
	}
	return p256.ToAffine(pub)
}
