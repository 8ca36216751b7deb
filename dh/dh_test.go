package dh

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestExchange_BothSidesAgree(t *testing.T) {
	params, err := GenerateParams(512)
	if err != nil {
		t.Fatalf("GenerateParams() error = %v", err)
	}

	alice, err := GenerateKeyPair(params)
	if err != nil {
		t.Fatal(err)
	}
	bob, err := GenerateKeyPair(params)
	if err != nil {
		t.Fatal(err)
	}

	aliceShared, err := SharedSecret(alice, bob.Public, params)
	if err != nil {
		t.Fatalf("SharedSecret() error = %v", err)
	}
	bobShared, err := SharedSecret(bob, alice.Public, params)
	if err != nil {
		t.Fatalf("SharedSecret() error = %v", err)
	}

	if aliceShared.Cmp(bobShared) != 0 {
		t.Errorf("shared secrets differ: %v vs %v", aliceShared, bobShared)
	}
}

func TestExchange_SmallGroupVector(t *testing.T) {
	// p=23, g=5 is the textbook toy group. With x=6 and y=15:
	// X = 5^6 mod 23 = 8, Y = 5^15 mod 23 = 19, and the shared
	// secret is 5^90 mod 23 = 2.
	params, err := NewParams(big.NewInt(23), big.NewInt(5))
	if err != nil {
		t.Fatal(err)
	}

	alice := &KeyPair{Private: big.NewInt(6), Public: new(big.Int).Exp(params.G, big.NewInt(6), params.P)}
	bob := &KeyPair{Private: big.NewInt(15), Public: new(big.Int).Exp(params.G, big.NewInt(15), params.P)}

	if alice.Public.Int64() != 8 {
		t.Errorf("alice public = %v, want 8", alice.Public)
	}
	if bob.Public.Int64() != 19 {
		t.Errorf("bob public = %v, want 19", bob.Public)
	}

	shared, err := SharedSecret(alice, bob.Public, params)
	if err != nil {
		t.Fatal(err)
	}
	if shared.Int64() != 2 {
		t.Errorf("shared secret = %v, want 2", shared)
	}
}

func TestNewParams_Invalid(t *testing.T) {
	tests := []struct {
		name string
		p, g *big.Int
	}{
		{"composite modulus", big.NewInt(21), big.NewInt(2)},
		{"nil modulus", nil, big.NewInt(2)},
		{"generator one", big.NewInt(23), big.NewInt(1)},
		{"generator at modulus", big.NewInt(23), big.NewInt(23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewParams(tt.p, tt.g); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestSharedSecret_RejectsDegeneratePublic(t *testing.T) {
	params, err := NewParams(big.NewInt(23), big.NewInt(5))
	if err != nil {
		t.Fatal(err)
	}
	own, err := GenerateKeyPair(params)
	if err != nil {
		t.Fatal(err)
	}

	for _, pub := range []*big.Int{nil, big.NewInt(0), big.NewInt(1), big.NewInt(22), big.NewInt(23)} {
		if _, err := SharedSecret(own, pub, params); !errors.Is(err, ErrInvalidPublicValue) {
			t.Errorf("public %v: expected ErrInvalidPublicValue, got %v", pub, err)
		}
	}
}

func TestDeriveKey(t *testing.T) {
	secret := big.NewInt(123456789)

	k1, err := DeriveKey(secret, nil, []byte("cyber:dh:demo"), 32)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}

	// Deterministic for the same inputs.
	k2, err := DeriveKey(secret, nil, []byte("cyber:dh:demo"), 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("same inputs derived different keys")
	}

	// Different context info separates keys.
	k3, err := DeriveKey(secret, nil, []byte("cyber:dh:other"), 32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(k1, k3) {
		t.Error("different info derived the same key")
	}
}

func TestX25519_BothSidesAgree(t *testing.T) {
	alice, err := GenerateX25519()
	if err != nil {
		t.Fatal(err)
	}
	bob, err := GenerateX25519()
	if err != nil {
		t.Fatal(err)
	}

	s1, err := alice.Shared(bob.Public)
	if err != nil {
		t.Fatalf("Shared() error = %v", err)
	}
	s2, err := bob.Shared(alice.Public)
	if err != nil {
		t.Fatalf("Shared() error = %v", err)
	}

	if !bytes.Equal(s1, s2) {
		t.Error("X25519 shared secrets differ")
	}
	if len(s1) != 32 {
		t.Errorf("shared secret length = %d, want 32", len(s1))
	}
}

func TestX25519_RejectsLowOrderPoint(t *testing.T) {
	kp, err := GenerateX25519()
	if err != nil {
		t.Fatal(err)
	}

	var zero [32]byte // the all-zero point has low order
	if _, err := kp.Shared(zero); !errors.Is(err, ErrLowOrderPoint) {
		t.Errorf("expected ErrLowOrderPoint, got %v", err)
	}
}
