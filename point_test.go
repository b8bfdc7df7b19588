package p256

import "testing"

func affineEqual(t *testing.T, a, b *AffinePoint) bool {
	t.Helper()
	return a.equal(b)
}

func TestPointDoubleMatchesAdd(t *testing.T) {
	ensureGeneratorTable()
	var g JacobianPoint
	g.FromAffine(&generatorAffine)

	var viaDouble, viaAdd JacobianPoint
	viaDouble.Double(&g)
	viaAdd.Add(&g, &g)

	da, err := viaDouble.ToAffine()
	if err != nil {
		t.Fatalf("double(G) should not be infinity: %v", err)
	}
	aa, err := viaAdd.ToAffine()
	if err != nil {
		t.Fatalf("G+G should not be infinity: %v", err)
	}
	if !affineEqual(t, da, aa) {
		t.Fatalf("double(P) != add(P,P): %+v vs %+v", da, aa)
	}
}

func TestPointAddIdentity(t *testing.T) {
	ensureGeneratorTable()
	var g, inf, sum1, sum2 JacobianPoint
	g.FromAffine(&generatorAffine)
	inf.SetInfinity()

	sum1.Add(&g, &inf)
	sum2.Add(&inf, &g)

	ga, _ := g.ToAffine()
	s1a, err := sum1.ToAffine()
	if err != nil {
		t.Fatalf("G + infinity should not be infinity: %v", err)
	}
	s2a, err := sum2.ToAffine()
	if err != nil {
		t.Fatalf("infinity + G should not be infinity: %v", err)
	}
	if !affineEqual(t, ga, s1a) || !affineEqual(t, ga, s2a) {
		t.Fatalf("identity law failed")
	}

	var dblInf JacobianPoint
	dblInf.Double(&inf)
	if !dblInf.z.IsZero() {
		t.Fatalf("double(infinity) should still be infinity")
	}
}

func TestPointAddInverse(t *testing.T) {
	ensureGeneratorTable()
	var g JacobianPoint
	g.FromAffine(&generatorAffine)

	var negG AffinePoint
	negG.Neg(&generatorAffine)

	var sum JacobianPoint
	sum.AddMixed(&g, &negG)
	if !sum.z.IsZero() {
		t.Fatalf("G + (-G) should be infinity, got z=%v", sum.z)
	}
}

func TestPointAddMixedMatchesAdd(t *testing.T) {
	ensureGeneratorTable()
	var gJac, g2 JacobianPoint
	gJac.FromAffine(&generatorAffine)
	g2.Double(&gJac)

	var viaMixed, viaAdd JacobianPoint
	viaMixed.AddMixed(&g2, &generatorAffine)
	viaAdd.Add(&g2, &gJac)

	ma, err := viaMixed.ToAffine()
	if err != nil {
		t.Fatalf("mixed add should not be infinity: %v", err)
	}
	aa, err := viaAdd.ToAffine()
	if err != nil {
		t.Fatalf("jacobian add should not be infinity: %v", err)
	}
	if !affineEqual(t, ma, aa) {
		t.Fatalf("AddMixed(2G, G) != Add(2G, G_jacobian)")
	}
}

func TestBoothRecodeRoundTrip(t *testing.T) {
	// For w=5, in ranges over a 6-bit value (bit 0 the carry-in, bits 1..5
	// the window's own bits); check the digit reconstructs the signed value
	// the window stands for once sign is accounted for:
	// (-1)^sign * magnitude == (in>>1) + (in&1) - 32*(in>>5).
	for in := uint32(0); in < 64; in++ {
		d := boothRecode(5, in)
		if d.magnitude() > 16 {
			t.Fatalf("booth magnitude out of range for in=%d: %d", in, d.magnitude())
		}
		got := int(d.magnitude())
		if d.sign() == 1 {
			got = -got
		}
		want := int(in>>1) + int(in&1) - 32*int(in>>5)
		if got != want {
			t.Fatalf("booth digit for in=%d: got %d, want %d", in, got, want)
		}
	}
}
