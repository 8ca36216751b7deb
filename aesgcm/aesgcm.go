// Package aesgcm provides authenticated symmetric encryption with
// AES-256-GCM. The same key both encrypts and decrypts; GCM additionally
// authenticates the ciphertext, so tampering is detected on open.
//
// Ciphertext layout: nonce (12 bytes) || ciphertext || tag (16 bytes).
// A nonce must never be reused with the same key; Encrypt draws a fresh
// random nonce for every call.
package aesgcm

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32
	// NonceSize is the AES-GCM nonce size in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag size in bytes.
	TagSize = 16
)

var (
	// ErrInvalidKeySize is returned when the key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce is not NonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrCiphertextTooShort is returned when the ciphertext cannot even hold
	// a nonce and a tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed is returned when authentication fails on open,
	// meaning the ciphertext was tampered with or the key is wrong.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// GenerateKey returns a random 256-bit AES key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateNonce returns a random 96-bit GCM nonce.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}

// Encrypt seals plaintext under key with a fresh random nonce.
// Returns: nonce (12 bytes) || ciphertext || tag (16 bytes).
func Encrypt(key, plaintext []byte) ([]byte, error) {
	nonce, err := GenerateNonce()
	if err != nil {
		return nil, err
	}
	return EncryptWithNonce(key, nonce, plaintext)
}

// EncryptWithNonce seals plaintext under key with a caller-supplied nonce.
// Reusing a nonce with the same key breaks GCM completely; prefer Encrypt
// unless a deterministic result is needed for a walkthrough.
func EncryptWithNonce(key, nonce, plaintext []byte) ([]byte, error) {
	return EncryptWithAAD(key, nonce, plaintext, nil)
}

// EncryptWithAAD seals plaintext like EncryptWithNonce and additionally
// binds additionalData into the authentication tag. The additional data is
// neither encrypted nor included in the output; the opener must present
// the same bytes to DecryptWithAAD.
func EncryptWithAAD(key, nonce, plaintext, additionalData []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, additionalData)
	return append(append([]byte{}, nonce...), ciphertext...), nil
}

// Decrypt opens a ciphertext produced by Encrypt, verifying the
// authentication tag.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	return DecryptWithAAD(key, ciphertext, nil)
}

// DecryptWithAAD opens a ciphertext sealed with additional authenticated
// data. Authentication fails unless additionalData matches the bytes
// presented at seal time.
func DecryptWithAAD(key, ciphertext, additionalData []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrCiphertextTooShort, len(ciphertext))
	}

	nonce := ciphertext[:NonceSize]
	plaintext, err := aead.Open(nil, nonce, ciphertext[NonceSize:], additionalData)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
