// Package rsautil is the production-shaped counterpart to the from-scratch
// engine in the rsa package: real key sizes, OAEP padding for encryption,
// and PSS for signatures, all through crypto/rsa.
package rsautil

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
)

// KeyBits is the RSA key size used by GenerateKey.
const KeyBits = 2048

// ErrSignatureInvalid is returned when PSS verification fails.
var ErrSignatureInvalid = errors.New("signature verification failed")

// GenerateKey returns a fresh 2048-bit RSA key pair with the conventional
// public exponent 65537.
func GenerateKey() (*rsa.PrivateKey, error) {
	return rsa.GenerateKey(rand.Reader, KeyBits)
}

// Encrypt seals plaintext to the holder of the matching private key using
// RSA-OAEP with SHA-256. OAEP randomizes the padding, so encrypting the
// same message twice yields different ciphertexts.
func Encrypt(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("oaep encrypt: %w", err)
	}
	return ciphertext, nil
}

// Decrypt opens an OAEP ciphertext with the private key.
func Decrypt(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("oaep decrypt: %w", err)
	}
	return plaintext, nil
}

// Sign produces an RSA-PSS signature over the SHA-256 digest of message.
// PSS salts each signature, so signing the same message twice yields
// different signatures, both valid.
func Sign(priv *rsa.PrivateKey, message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	sig, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA256, digest[:], nil)
	if err != nil {
		return nil, fmt.Errorf("pss sign: %w", err)
	}
	return sig, nil
}

// Verify checks an RSA-PSS signature over message.
func Verify(pub *rsa.PublicKey, message, signature []byte) error {
	digest := sha256.Sum256(message)
	if err := rsa.VerifyPSS(pub, crypto.SHA256, digest[:], signature, nil); err != nil {
		return ErrSignatureInvalid
	}
	return nil
}
