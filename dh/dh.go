// Package dh implements Diffie-Hellman key agreement.
//
// The finite-field form is written out over math/big so each step of the
// exchange is visible: both parties derive the same g^(xy) mod p from
// nothing but the public values and their own secret. The X25519 form in
// x25519.go is the modern library-backed counterpart.
package dh

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

const millerRabinRounds = 40

var (
	one = big.NewInt(1)
	two = big.NewInt(2)

	// ErrInvalidParams is returned when the group modulus is not prime or
	// the generator is out of range.
	ErrInvalidParams = errors.New("invalid group parameters")

	// ErrInvalidPublicValue is returned when a peer's public value lies
	// outside (1, p-1). Accepting such values leaks the shared secret.
	ErrInvalidPublicValue = errors.New("invalid public value")
)

// Params holds the public group parameters both parties agree on before
// the exchange. They are not secret.
type Params struct {
	P *big.Int // prime modulus
	G *big.Int // generator
}

// KeyPair holds one party's secret exponent and the public value derived
// from it. Only Public is ever transmitted.
type KeyPair struct {
	Private *big.Int // secret exponent x
	Public  *big.Int // g^x mod p
}

// NewParams validates caller-supplied group parameters.
func NewParams(p, g *big.Int) (*Params, error) {
	if p == nil || !p.ProbablyPrime(millerRabinRounds) {
		return nil, fmt.Errorf("%w: modulus must be prime", ErrInvalidParams)
	}
	if g == nil || g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: generator must lie in (1, p)", ErrInvalidParams)
	}
	return &Params{P: p, G: g}, nil
}

// GenerateParams produces a fresh prime modulus of the given bit length
// with generator 2. Good enough for a demonstration exchange; production
// deployments use standardized groups (RFC 3526) or X25519.
func GenerateParams(bits int) (*Params, error) {
	if bits < 16 {
		return nil, fmt.Errorf("%w: modulus of %d bits is too small", ErrInvalidParams, bits)
	}
	p, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		return nil, err
	}
	return &Params{P: p, G: new(big.Int).Set(two)}, nil
}

// GenerateKeyPair picks a random secret exponent in [2, p-2] and computes
// the public value g^x mod p.
func GenerateKeyPair(params *Params) (*KeyPair, error) {
	if params == nil || params.P == nil || params.G == nil {
		return nil, ErrInvalidParams
	}

	// x in [2, p-2]: rand.Int gives [0, p-3), shift up by 2.
	limit := new(big.Int).Sub(params.P, big.NewInt(3))
	if limit.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus too small for a secret exponent", ErrInvalidParams)
	}
	x, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, err
	}
	x.Add(x, two)

	return &KeyPair{
		Private: x,
		Public:  new(big.Int).Exp(params.G, x, params.P),
	}, nil
}

// SharedSecret combines our secret exponent with the peer's public value:
// (peerPublic)^x mod p. Both sides arrive at the same g^(xy) mod p.
func SharedSecret(own *KeyPair, peerPublic *big.Int, params *Params) (*big.Int, error) {
	if params == nil || params.P == nil || own == nil || own.Private == nil {
		return nil, ErrInvalidParams
	}
	pMinusOne := new(big.Int).Sub(params.P, one)
	if peerPublic == nil || peerPublic.Cmp(one) <= 0 || peerPublic.Cmp(pMinusOne) >= 0 {
		return nil, fmt.Errorf("%w: must lie in (1, p-1)", ErrInvalidPublicValue)
	}
	return new(big.Int).Exp(peerPublic, own.Private, params.P), nil
}

// DeriveKey stretches a shared secret into a symmetric key of the given
// length with HKDF-SHA-256. The raw group element must never be used as a
// key directly; its bits are biased.
func DeriveKey(secret *big.Int, salt, info []byte, length int) ([]byte, error) {
	if secret == nil || length <= 0 {
		return nil, errors.New("dh: secret and length must be set")
	}

	reader := hkdf.New(sha256.New, secret.Bytes(), salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
