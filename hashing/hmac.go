package hashing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// Tag computes an HMAC-SHA-256 authentication tag for message under key.
// Unlike a plain digest, the tag cannot be recomputed without the key, so
// it authenticates the sender as well as the content.
func Tag(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// VerifyTag reports whether tag authenticates message under key. The
// comparison is constant-time; an early-exit comparison would leak how
// many leading bytes of a forged tag were correct.
func VerifyTag(key, message, tag []byte) bool {
	return hmac.Equal(Tag(key, message), tag)
}

// ConstantTimeEquals compares two byte slices without leaking the position
// of the first difference. Use it for any secret-bearing comparison:
// password hashes, tokens, authentication tags.
func ConstantTimeEquals(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
