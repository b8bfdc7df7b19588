package p256

import (
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestMethodFieldEncodeDecodeRoundTrip(t *testing.T) {
	m := DefaultMethod()
	cases := []string{
		"0",
		"1",
		"deadbeef",
		"ffffffff00000001000000000000000000000000fffffffffffffffffffffffe",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			x, _ := new(big.Int).SetString(c, 16)
			enc, err := m.Field.Encode(x)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			dec, err := m.Field.Decode(enc)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if dec.Cmp(x) != 0 {
				t.Fatalf("Decode(Encode(x)) != x:\n%s", spew.Sdump(x, enc, dec))
			}
		})
	}
}

func TestMethodFieldMulMatchesBigInt(t *testing.T) {
	m := DefaultMethod()
	a, _ := new(big.Int).SetString("123456789abcdef0123456789abcdef0", 16)
	b, _ := new(big.Int).SetString("fedcba9876543210fedcba9876543210", 16)

	encA, err := m.Field.Encode(a)
	if err != nil {
		t.Fatalf("Encode(a): %v", err)
	}
	encB, err := m.Field.Encode(b)
	if err != nil {
		t.Fatalf("Encode(b): %v", err)
	}
	prod, err := m.Field.Mul(encA, encB)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	got, err := m.Field.Decode(prod)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := new(big.Int).Mul(a, b)
	want.Mod(want, fieldPBig)
	if got.Cmp(want) != 0 {
		t.Fatalf("mul_mont(to_mont(a), to_mont(b)) != to_mont(a*b mod p):\n%s", spew.Sdump(got, want))
	}

	sq, err := m.Field.Sqr(encA)
	if err != nil {
		t.Fatalf("Sqr: %v", err)
	}
	viaMul, err := m.Field.Mul(encA, encA)
	if err != nil {
		t.Fatalf("Mul(a,a): %v", err)
	}
	if sq.Cmp(viaMul) != 0 {
		t.Fatalf("Sqr(a) != Mul(a,a):\n%s", spew.Sdump(sq, viaMul))
	}
}

func TestMethodFieldRejectsOutOfRange(t *testing.T) {
	m := DefaultMethod()
	tooBig := new(big.Int).Add(fieldPBig, big.NewInt(1))
	neg := big.NewInt(-1)

	for _, bad := range []*big.Int{nil, tooBig, neg} {
		if _, err := m.Field.Encode(bad); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Encode(%v) should report ErrOutOfRange, got %v", bad, err)
		}
		if _, err := m.Field.Mul(bad, big.NewInt(1)); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Mul(%v, 1) should report ErrOutOfRange, got %v", bad, err)
		}
	}
}

func TestMethodMulDispatches(t *testing.T) {
	m := DefaultMethod()
	curve := StandardCurve()

	viaMethod, err := m.Mul(curve, big.NewInt(9), nil, nil)
	if err != nil {
		t.Fatalf("Method.Mul: %v", err)
	}
	direct, err := ScalarBaseMult(big.NewInt(9))
	if err != nil {
		t.Fatalf("ScalarBaseMult: %v", err)
	}

	mx, my, err := m.ToAffine(viaMethod)
	if err != nil {
		t.Fatalf("Method.ToAffine: %v", err)
	}
	dx, dy, err := ToAffine(direct)
	if err != nil {
		t.Fatalf("ToAffine: %v", err)
	}
	if mx.Cmp(dx) != 0 || my.Cmp(dy) != 0 {
		t.Fatalf("Method.Mul(9, G) != ScalarBaseMult(9):\n%s", spew.Sdump(mx, my, dx, dy))
	}
}
