// Package caesar implements the Caesar substitution cipher, the classic
// fixed-shift cipher over the uppercase Latin alphabet. Input is uppercased
// and characters outside the alphabet pass through unchanged.
package caesar

import "strings"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Encrypt shifts every letter of input forward by shift positions, wrapping
// around the alphabet. Negative shifts are normalized, so Encrypt(s, -1)
// and Encrypt(s, 25) agree.
func Encrypt(input string, shift int) string {
	return apply(input, shift)
}

// Decrypt reverses Encrypt by applying the opposite shift.
func Decrypt(input string, shift int) string {
	return apply(input, -shift)
}

func apply(input string, shift int) string {
	if input == "" {
		return input
	}

	// Normalize into [0, 25] so negative shifts behave under modulo.
	norm := ((shift % 26) + 26) % 26

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range strings.ToUpper(input) {
		pos := strings.IndexRune(alphabet, r)
		if pos < 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(alphabet[(pos+norm)%26])
	}
	return b.String()
}
