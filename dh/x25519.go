package dh

import (
	"crypto/rand"
	"errors"

	"github.com/cloudflare/circl/dh/x25519"
)

// ErrLowOrderPoint is returned when a peer's X25519 public key is a
// low-order point, which would force the shared secret to a known value.
var ErrLowOrderPoint = errors.New("x25519: low-order public key")

// X25519KeyPair is a Curve25519 key pair for the library-backed exchange.
type X25519KeyPair struct {
	Public x25519.Key
	Secret x25519.Key
}

// GenerateX25519 creates a fresh X25519 key pair.
func GenerateX25519() (*X25519KeyPair, error) {
	var kp X25519KeyPair
	if _, err := rand.Read(kp.Secret[:]); err != nil {
		return nil, err
	}
	x25519.KeyGen(&kp.Public, &kp.Secret)
	return &kp, nil
}

// Shared computes the X25519 shared secret with a peer's public key.
func (kp *X25519KeyPair) Shared(peerPublic x25519.Key) ([]byte, error) {
	var shared x25519.Key
	if ok := x25519.Shared(&shared, &kp.Secret, &peerPublic); !ok {
		return nil, ErrLowOrderPoint
	}
	return shared[:], nil
}
