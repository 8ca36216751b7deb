package rsa

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
)

// HashFunc computes a fixed-length digest of a message. It is the hashing
// capability consumed by Sign and Verify; SHA256 is the usual choice.
type HashFunc func([]byte) []byte

// SHA256 is the default HashFunc for the sign and verify paths.
var SHA256 HashFunc = func(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Transform computes value^exponent mod modulus. Encryption, decryption,
// signing, and verification are all this one primitive with different
// exponents. The exponentiation is square-and-multiply, O(log exponent)
// modular multiplications; a naive power-then-mod evaluation would be
// infeasible for real key sizes.
func Transform(value, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Cmp(one) <= 0 || exponent == nil || exponent.Sign() <= 0 {
		return nil, fmt.Errorf("%w: exponent and modulus must be positive", ErrInvalidKeyMaterial)
	}
	if value == nil || value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: value must lie in [0, modulus)", ErrValueOutOfRange)
	}
	return new(big.Int).Exp(value, exponent, modulus), nil
}

// Encrypt encodes msg and raises every symbol to the public exponent,
// returning one integer per input symbol. The per-symbol scheme is the
// documented behavior of this demonstration engine: it is deterministic,
// leaks symbol frequencies, and must not be used for anything real. See
// the rsautil package for padded, block-wise RSA.
func Encrypt(msg string, pub *PublicKey) ([]*big.Int, error) {
	if err := pub.validate(); err != nil {
		return nil, err
	}

	values, err := Encode(msg, pub.N)
	if err != nil {
		return nil, err
	}

	ciphertext := make([]*big.Int, len(values))
	for i, v := range values {
		c, err := Transform(v, pub.E, pub.N)
		if err != nil {
			return nil, err
		}
		ciphertext[i] = c
	}
	return ciphertext, nil
}

// Decrypt applies the private exponent to every ciphertext value and
// decodes the result. Values outside [0, N) are rejected.
func Decrypt(ciphertext []*big.Int, priv *PrivateKey) (string, error) {
	if err := priv.validate(); err != nil {
		return "", err
	}

	values := make([]*big.Int, len(ciphertext))
	for i, c := range ciphertext {
		m, err := Transform(c, priv.D, priv.N)
		if err != nil {
			return "", err
		}
		values[i] = m
	}
	return Decode(values)
}

// Sign hashes msg, reduces the digest modulo N, and raises it to the
// private exponent. The reduction is only needed because demonstration
// moduli are smaller than the digest; a production modulus exceeds the
// digest size and the reduction becomes a no-op, so one code path serves
// both.
func Sign(msg string, priv *PrivateKey, hash HashFunc) (*big.Int, error) {
	if err := priv.validate(); err != nil {
		return nil, err
	}
	if hash == nil {
		return nil, errors.New("rsa: nil hash function")
	}

	digest := new(big.Int).SetBytes(hash([]byte(msg)))
	digest.Mod(digest, priv.N)
	return Transform(digest, priv.D, priv.N)
}

// Verify recomputes the reduced digest of msg and compares it against the
// value recovered by raising the signature to the public exponent. The
// comparison is constant-time for uniformity with the secret-bearing
// comparisons elsewhere in the module, although nothing compared here is
// secret.
func Verify(msg string, signature *big.Int, pub *PublicKey, hash HashFunc) (bool, error) {
	if err := pub.validate(); err != nil {
		return false, err
	}
	if hash == nil {
		return false, errors.New("rsa: nil hash function")
	}
	if signature == nil || signature.Sign() < 0 || signature.Cmp(pub.N) >= 0 {
		return false, fmt.Errorf("%w: signature must lie in [0, N)", ErrValueOutOfRange)
	}

	digest := new(big.Int).SetBytes(hash([]byte(msg)))
	digest.Mod(digest, pub.N)

	recovered, err := Transform(signature, pub.E, pub.N)
	if err != nil {
		return false, err
	}
	return constantTimeEqual(digest, recovered), nil
}

// constantTimeEqual compares two non-negative integers without leaking the
// position of the first differing byte.
func constantTimeEqual(a, b *big.Int) bool {
	size := len(a.Bytes())
	if l := len(b.Bytes()); l > size {
		size = l
	}
	if size == 0 {
		size = 1
	}
	ab := a.FillBytes(make([]byte, size))
	bb := b.FillBytes(make([]byte, size))
	return subtle.ConstantTimeCompare(ab, bb) == 1
}
