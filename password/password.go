// Package password demonstrates secure password storage: unique per-user
// salts, an application-wide secret pepper, and bcrypt as the
// production-grade alternative to a plain keyed digest.
//
// The salt is stored next to the hash and only ensures identical passwords
// hash differently. The pepper is never stored with the records; an
// attacker holding the database alone cannot test guesses offline.
package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/abliveira/cyber/hashing"
)

// DefaultSaltLength is the salt size in bytes before hex encoding.
const DefaultSaltLength = 16

// ErrEmptyPepper is returned when hashing is attempted without a pepper.
var ErrEmptyPepper = errors.New("pepper must not be empty")

// GenerateSalt returns length random bytes, hex encoded.
func GenerateSalt(length int) (string, error) {
	if length <= 0 {
		length = DefaultSaltLength
	}
	salt := make([]byte, length)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// Hash computes the peppered hash of a salted password: HMAC-SHA-256 keyed
// by the pepper over salt+password. Keying with HMAC rather than mixing
// the pepper into the input keeps the construction safe even against
// length-extension tricks.
func Hash(password, salt string, pepper []byte) (string, error) {
	if len(pepper) == 0 {
		return "", ErrEmptyPepper
	}
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(salt + password))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the peppered hash and compares it to the stored one in
// constant time.
func Verify(password, salt, storedHash string, pepper []byte) (bool, error) {
	recomputed, err := Hash(password, salt, pepper)
	if err != nil {
		return false, err
	}
	return hashing.ConstantTimeEquals([]byte(recomputed), []byte(storedHash)), nil
}

// BcryptHash hashes a password with bcrypt at the default cost. Bcrypt
// generates and embeds its own salt and is deliberately slow, which is
// what makes it suitable for passwords where a bare digest is not.
func BcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// BcryptVerify reports whether password matches a bcrypt hash.
func BcryptVerify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
