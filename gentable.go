package p256

import (
	"math/big"
	"sync"
)

// fixedBaseWindow, fixedBaseRows and fixedBaseRowSize describe the w=7
// precomputed generator table: 37 rows, each covering a 7-bit window
// position, each holding 2^(w-1) = 64 affine multiples.
const (
	fixedBaseWindow  = 7
	fixedBaseRows    = 37
	fixedBaseRowSize = 1 << (fixedBaseWindow - 1)
)

// genTable is the precomputed generator table: row i holds the multiples
// {m · 2^(7i) · G : m = 1..64}, indexed so row[i][m-1] is the m-th multiple
// (m == 0, the identity, is never materialized — table indices are offset
// by -1).
//
// An odd-multiples-only table (row i holding "(2k+1)·2^(7i)·G for
// k = 0..63") would need Booth digit magnitudes up to 127 for w=7, which
// contradicts the general digit-range formula shared with the w=5 ladder
// (magnitude in [0, 2^(w-1)] = [0, 64] for w=7), a range independently
// confirmed by the w=5 ladder's explicit T[1..16] construction (direct
// multiples 1..16, not odd-only). This implementation resolves the
// inconsistency in favor of that general formula, shared by both ladders
// and backed by a fully worked example: row i stores direct multiples
// 1..64, selected by Booth magnitude directly, exactly like the w=5 table.
// See DESIGN.md.
type genTable struct {
	rows [fixedBaseRows][fixedBaseRowSize]AffinePoint
}

var (
	generatorTable     genTable
	generatorAffine    AffinePoint
	generatorTableOnce sync.Once
)

// p256GxHex and p256GyHex are the standard NIST P-256 base point
// coordinates. The table itself is meant to be fixed, bit-for-bit, input
// data; lacking an embeddable literal table from an external assembly
// backend, this module builds the table once, on first use, from these two
// published constants and the point layer itself: after
// ensureGeneratorTable runs once, the table is read-only and
// package-global for the remainder of the program, same as a literal
// would be.
const (
	p256GxHex = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	p256GyHex = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"
)

func ensureGeneratorTable() {
	generatorTableOnce.Do(buildGeneratorTable)
}

func buildGeneratorTable() {
	gx, _ := new(big.Int).SetString(p256GxHex, 16)
	gy, _ := new(big.Int).SetString(p256GyHex, 16)

	var mx, my fe
	plainX, plainY := feFromBigInt(gx), feFromBigInt(gy)
	mx.ToMontgomery(&plainX)
	my.ToMontgomery(&plainY)
	generatorAffine = AffinePoint{x: mx, y: my}

	current := generatorAffine
	for i := 0; i < fixedBaseRows; i++ {
		var acc JacobianPoint
		acc.FromAffine(&current)
		generatorTable.rows[i][0] = current // 1 * current

		for k := 1; k < fixedBaseRowSize; k++ {
			acc.AddMixed(&acc, &current)
			aff, err := acc.ToAffine()
			if err != nil {
				panic("p256: generator table construction hit infinity")
			}
			generatorTable.rows[i][k] = *aff
		}

		if i == fixedBaseRows-1 {
			break
		}
		var shifted JacobianPoint
		shifted.FromAffine(&current)
		for s := 0; s < fixedBaseWindow; s++ {
			shifted.Double(&shifted)
		}
		aff, err := shifted.ToAffine()
		if err != nil {
			panic("p256: generator table construction hit infinity")
		}
		current = *aff
	}
}
