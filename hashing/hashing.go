// Package hashing provides message digests over a catalog of algorithms,
// streaming file hashing, and HMAC message authentication.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a digest algorithm in the catalog.
type Algorithm string

const (
	MD5     Algorithm = "MD5"
	SHA1    Algorithm = "SHA-1"
	SHA256  Algorithm = "SHA-256"
	SHA512  Algorithm = "SHA-512"
	SHA3256 Algorithm = "SHA3-256"
	SHA3512 Algorithm = "SHA3-512"
)

// ErrUnknownAlgorithm is returned for an algorithm outside the catalog.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Catalog lists the supported algorithms in display order.
var Catalog = []Algorithm{MD5, SHA1, SHA256, SHA512, SHA3256, SHA3512}

// Legacy reports whether the algorithm is broken for cryptographic use.
// MD5 and SHA-1 remain in the catalog only to demonstrate why they were
// retired.
func (a Algorithm) Legacy() bool {
	return a == MD5 || a == SHA1
}

// New returns a fresh hash.Hash for the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case SHA3256:
		return sha3.New256(), nil
	case SHA3512:
		return sha3.New512(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
}

// Sum returns the hex-encoded digest of data.
func Sum(a Algorithm, data []byte) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Digest couples an algorithm with its hex-encoded sum, for the catalog
// walkthrough.
type Digest struct {
	Algorithm Algorithm
	Hex       string
}

// SumAll digests data with every catalog algorithm.
func SumAll(data []byte) []Digest {
	digests := make([]Digest, 0, len(Catalog))
	for _, a := range Catalog {
		sum, err := Sum(a, data)
		if err != nil {
			// Catalog algorithms always construct.
			continue
		}
		digests = append(digests, Digest{Algorithm: a, Hex: sum})
	}
	return digests
}

// SumReader streams r through the algorithm, so arbitrarily large inputs
// hash in constant memory.
func SumReader(a Algorithm, r io.Reader) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hashing input: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumFile hashes the contents of the file at path without loading it into
// memory.
func SumFile(a Algorithm, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return SumReader(a, f)
}
