// Package vigenere implements the Vigenère polyalphabetic cipher: each
// letter is shifted by the corresponding letter of a repeating keyword,
// which defeats the single-alphabet frequency analysis that breaks a
// Caesar cipher.
package vigenere

import (
	"errors"
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrEmptyKeyword is returned when the keyword is empty.
var ErrEmptyKeyword = errors.New("keyword must not be empty")

// Encrypt shifts each letter of input by the matching keyword letter.
// Input is uppercased; non-letters pass through without consuming a
// keyword position.
func Encrypt(input, keyword string) (string, error) {
	return apply(input, keyword, false)
}

// Decrypt reverses Encrypt with the same keyword.
func Decrypt(input, keyword string) (string, error) {
	return apply(input, keyword, true)
}

func apply(input, keyword string, decrypt bool) (string, error) {
	if keyword == "" {
		return "", ErrEmptyKeyword
	}
	upperKeyword := strings.ToUpper(keyword)
	for _, k := range upperKeyword {
		if strings.IndexRune(alphabet, k) < 0 {
			return "", fmt.Errorf("keyword may only contain letters, got %q", k)
		}
	}
	if input == "" {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	keywordIndex := 0
	for _, r := range strings.ToUpper(input) {
		pos := strings.IndexRune(alphabet, r)
		if pos < 0 {
			b.WriteRune(r)
			continue
		}

		keyShift := strings.IndexRune(alphabet, rune(upperKeyword[keywordIndex%len(upperKeyword)]))
		if decrypt {
			keyShift = -keyShift
		}
		b.WriteByte(alphabet[((pos+keyShift)%26+26)%26])
		keywordIndex++
	}
	return b.String(), nil
}
