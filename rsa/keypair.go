package rsa

import (
	"fmt"
	"math/big"
)

// millerRabinRounds is the iteration count passed to ProbablyPrime when
// validating caller-supplied primes.
const millerRabinRounds = 40

var (
	one = big.NewInt(1)
	two = big.NewInt(2)

	// defaultExponent is the conventional RSA public exponent. It is only
	// usable when it is both below and coprime to the totient, which small
	// demonstration moduli usually rule out.
	defaultExponent = big.NewInt(65537)
)

// PublicKey is the shareable half of an RSA key pair.
type PublicKey struct {
	N *big.Int // modulus
	E *big.Int // public exponent
}

// PrivateKey is the secret half of an RSA key pair. It is generated
// together with the public key and must never leave the generating
// context.
type PrivateKey struct {
	N *big.Int // modulus
	D *big.Int // private exponent
}

// GenerateKeyPair derives an RSA key pair from two distinct primes.
//
// It computes n = p·q and φ = (p−1)(q−1), picks the public exponent e
// (65537 when possible, otherwise the smallest coprime odd candidate from
// 3 upward), and derives d as the modular inverse of e mod φ using the
// extended Euclidean algorithm.
func GenerateKeyPair(p, q *big.Int) (*PublicKey, *PrivateKey, error) {
	if p == nil || q == nil || !p.ProbablyPrime(millerRabinRounds) || !q.ProbablyPrime(millerRabinRounds) {
		return nil, nil, fmt.Errorf("%w: p and q must both be prime", ErrInvalidPrime)
	}
	if p.Cmp(q) == 0 {
		return nil, nil, fmt.Errorf("%w: p and q must be distinct", ErrInvalidPrime)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	e, err := choosePublicExponent(phi)
	if err != nil {
		return nil, nil, err
	}

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		// Unreachable given choosePublicExponent's postcondition, but a
		// failed inverse must surface as an error, never as a wrong key.
		return nil, nil, fmt.Errorf("%w: e has no inverse modulo the totient", ErrKeyGeneration)
	}

	return &PublicKey{N: n, E: e}, &PrivateKey{N: n, D: d}, nil
}

// GenerateKeyPairWithExponent is GenerateKeyPair with a caller-chosen
// public exponent, for walking through textbook examples such as
// p=61, q=53, e=17. The exponent must satisfy 1 < e < φ and gcd(e, φ) = 1.
func GenerateKeyPairWithExponent(p, q, e *big.Int) (*PublicKey, *PrivateKey, error) {
	if p == nil || q == nil || !p.ProbablyPrime(millerRabinRounds) || !q.ProbablyPrime(millerRabinRounds) {
		return nil, nil, fmt.Errorf("%w: p and q must both be prime", ErrInvalidPrime)
	}
	if p.Cmp(q) == 0 {
		return nil, nil, fmt.Errorf("%w: p and q must be distinct", ErrInvalidPrime)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	if e == nil || e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return nil, nil, fmt.Errorf("%w: e must satisfy 1 < e < φ", ErrKeyGeneration)
	}
	if new(big.Int).GCD(nil, nil, e, phi).Cmp(one) != 0 {
		return nil, nil, fmt.Errorf("%w: e is not coprime to the totient", ErrKeyGeneration)
	}

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, nil, fmt.Errorf("%w: e has no inverse modulo the totient", ErrKeyGeneration)
	}

	return &PublicKey{N: n, E: new(big.Int).Set(e)}, &PrivateKey{N: n, D: d}, nil
}

// choosePublicExponent returns 65537 when it is a valid exponent for phi,
// and otherwise searches odd integers 3, 5, 7, ... Some coprime e < phi
// always exists for phi > 1, so the search terminates.
func choosePublicExponent(phi *big.Int) (*big.Int, error) {
	if phi.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: totient must exceed 1", ErrKeyGeneration)
	}

	gcd := new(big.Int)
	if defaultExponent.Cmp(phi) < 0 && gcd.GCD(nil, nil, defaultExponent, phi).Cmp(one) == 0 {
		return new(big.Int).Set(defaultExponent), nil
	}

	for e := big.NewInt(3); e.Cmp(phi) < 0; e.Add(e, two) {
		if gcd.GCD(nil, nil, e, phi).Cmp(one) == 0 {
			return new(big.Int).Set(e), nil
		}
	}

	// Unreachable for phi > 1.
	return nil, fmt.Errorf("%w: no exponent coprime to the totient", ErrKeyGeneration)
}

func (k *PublicKey) validate() error {
	if k == nil || k.N == nil || k.E == nil || k.N.Cmp(one) <= 0 || k.E.Sign() <= 0 {
		return fmt.Errorf("%w: public key components must be positive", ErrInvalidKeyMaterial)
	}
	return nil
}

func (k *PrivateKey) validate() error {
	if k == nil || k.N == nil || k.D == nil || k.N.Cmp(one) <= 0 || k.D.Sign() <= 0 {
		return fmt.Errorf("%w: private key components must be positive", ErrInvalidKeyMaterial)
	}
	return nil
}

// Matches reports whether pub and priv share a modulus. Using halves of
// different key pairs together produces garbage, so the demos check this
// up front.
func Matches(pub *PublicKey, priv *PrivateKey) error {
	if err := pub.validate(); err != nil {
		return err
	}
	if err := priv.validate(); err != nil {
		return err
	}
	if pub.N.Cmp(priv.N) != 0 {
		return fmt.Errorf("%w: public and private moduli differ", ErrInvalidKeyMaterial)
	}
	return nil
}
