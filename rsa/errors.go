package rsa

import "errors"

var (
	// ErrInvalidPrime is returned when a value used as p or q is not prime,
	// when p equals q, or when a candidate range holds too few primes.
	ErrInvalidPrime = errors.New("invalid prime")

	// ErrKeyGeneration is returned when no public exponent coprime to the
	// totient exists or the modular inverse cannot be computed. Both are
	// unreachable for valid primes; the checks exist so a bad inverse is
	// reported instead of silently producing a wrong key.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrEncodingOverflow is returned when a message symbol's code point is
	// not below the modulus, which would make the ciphertext undecodable.
	ErrEncodingOverflow = errors.New("symbol does not fit below the modulus")

	// ErrValueOutOfRange is returned when a ciphertext or signature value is
	// outside [0, N) on entry to a transform.
	ErrValueOutOfRange = errors.New("value out of range for the modulus")

	// ErrInvalidKeyMaterial is returned for zero, negative, or missing key
	// components.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)
