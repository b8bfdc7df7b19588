package p256

import (
	"math/big"
	"testing"
)

func feFromHex(t *testing.T, hex string) fe {
	t.Helper()
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		t.Fatalf("bad hex literal %q", hex)
	}
	return feFromBigInt(v)
}

func TestFieldMontgomeryRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"2",
		"ffffffff00000001000000000000000000000000fffffffffffffffffffffffe",
		"7b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			x := feFromHex(t, c)
			var mont, back fe
			mont.ToMontgomery(&x)
			back.FromMontgomery(&mont)
			if !back.Equal(&x) {
				t.Fatalf("round trip mismatch for %s", c)
			}
		})
	}
}

func TestFieldMulMontDistributesOverToMontgomery(t *testing.T) {
	x := feFromHex(t, "2")
	y := feFromHex(t, "3")

	var mx, my, prod, want fe
	mx.ToMontgomery(&x)
	my.ToMontgomery(&y)
	prod.MulMont(&mx, &my)

	var plainProd fe
	plainProd.FromMontgomery(&prod)
	want = feFromHex(t, "6")
	if !plainProd.Equal(&want) {
		t.Fatalf("mulMont(to_mont(2),to_mont(3)) decoded = %v, want 6", plainProd)
	}
}

func TestFieldAddSubInverse(t *testing.T) {
	a := feFromHex(t, "123456789abcdef")
	b := feFromHex(t, "fedcba9876543210")

	var diff, sum fe
	diff.Sub(&b, &a)
	sum.Add(&a, &diff)
	if !sum.Equal(&b) {
		t.Fatalf("a + (b - a) != b")
	}

	var neg, zero fe
	neg.Neg(&a)
	zero.Add(&a, &neg)
	if !zero.IsZero() {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestFieldDoubleTripleHalve(t *testing.T) {
	a := feFromHex(t, "9")

	var dbl, viaAdd fe
	dbl.Double(&a)
	viaAdd.Add(&a, &a)
	if !dbl.Equal(&viaAdd) {
		t.Fatalf("Double(a) != a+a")
	}

	var triple, viaAdd3 fe
	triple.Triple(&a)
	viaAdd3.Add(&viaAdd, &a)
	if !triple.Equal(&viaAdd3) {
		t.Fatalf("Triple(a) != a+a+a")
	}

	var half, doubledHalf fe
	half.Halve(&a)
	doubledHalf.Double(&half)
	if !doubledHalf.Equal(&a) {
		t.Fatalf("2 * (a/2) != a")
	}
}

func TestFieldInvert(t *testing.T) {
	one := feFromHex(t, "1")
	cases := []string{"2", "3", "123456789abcdef0123456789abcdef", "ffffffff"}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			x := feFromHex(t, c)
			var mx, inv, prod, plainProd fe
			mx.ToMontgomery(&x)
			inv.Invert(&mx)
			prod.MulMont(&mx, &inv)
			plainProd.FromMontgomery(&prod)
			if !plainProd.Equal(&one) {
				t.Fatalf("x * x^-1 != 1 for x=%s", c)
			}
		})
	}
}

func TestFieldInvertZero(t *testing.T) {
	var zero, inv fe
	inv.Invert(&zero)
	if !inv.IsZero() {
		t.Fatalf("Invert(0) should be 0 in Montgomery form, got %v", inv)
	}
}
