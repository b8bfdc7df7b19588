package ecdh

import (
	"math/big"
	"testing"
)

func TestSharedSecretAgreement(t *testing.T) {
	alicePriv := big.NewInt(12345)
	bobPriv := big.NewInt(67890)

	aliceX, aliceY, err := PublicKey(alicePriv)
	if err != nil {
		t.Fatalf("alice PublicKey: %v", err)
	}
	bobX, bobY, err := PublicKey(bobPriv)
	if err != nil {
		t.Fatalf("bob PublicKey: %v", err)
	}

	aliceSecret, err := SharedSecret(alicePriv, bobX, bobY)
	if err != nil {
		t.Fatalf("alice SharedSecret: %v", err)
	}
	bobSecret, err := SharedSecret(bobPriv, aliceX, aliceY)
	if err != nil {
		t.Fatalf("bob SharedSecret: %v", err)
	}

	if aliceSecret != bobSecret {
		t.Fatalf("ECDH shared secrets disagree: %x vs %x", aliceSecret, bobSecret)
	}
}

func TestSharedSecretRejectsOutOfRangePoint(t *testing.T) {
	bad := new(big.Int).Lsh(big.NewInt(1), 300)
	_, err := SharedSecret(big.NewInt(1), bad, bad)
	if err != ErrInvalidPeerPoint {
		t.Fatalf("expected ErrInvalidPeerPoint, got %v", err)
	}
}
