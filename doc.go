// Package p256 implements constant-time scalar multiplication on the NIST
// P-256 elliptic curve: computing k·G for the standard generator G, and the
// linear combination k·G + Σ kᵢ·Pᵢ for arbitrary points Pᵢ, as used by
// ECDSA and ECDH implementations built on top of this package.
//
// Field elements live in the Montgomery domain (residues mod p scaled by
// R = 2^256) everywhere except at the SetBytes/Bytes boundary. Points are
// held in Jacobian coordinates using the Z=0 convention for the point at
// infinity. Every exported operation that touches a secret scalar or a
// secret-dependent point runs in time and memory-access pattern independent
// of its input values: no branches on field or scalar contents, no table
// indexing by secret data.
//
// This package does not implement ECDSA or ECDH; see the x/ecdh
// subdirectory for a minimal example consumer.
package p256
