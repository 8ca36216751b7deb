package rsa

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// Encode maps each rune of msg to its Unicode code point. Every code point
// must be strictly below the modulus n: a symbol at or above n would wrap
// under the modular transform and could never be decoded again, so the
// codec rejects it instead.
func Encode(msg string, n *big.Int) ([]*big.Int, error) {
	if n == nil || n.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: modulus must exceed 1", ErrInvalidKeyMaterial)
	}

	values := make([]*big.Int, 0, utf8.RuneCountInString(msg))
	for _, r := range msg {
		v := big.NewInt(int64(r))
		if v.Cmp(n) >= 0 {
			return nil, fmt.Errorf("%w: symbol %q has code point %d, modulus is %v", ErrEncodingOverflow, r, r, n)
		}
		values = append(values, v)
	}
	return values, nil
}

// Decode maps a sequence of code-point values back to a string. It is a
// two-sided inverse of Encode whenever every original code point was below
// the modulus.
func Decode(values []*big.Int) (string, error) {
	var b strings.Builder
	for i, v := range values {
		if v == nil || v.Sign() < 0 || !v.IsInt64() || v.Int64() > int64(utf8.MaxRune) {
			return "", fmt.Errorf("%w: element %d is not a valid code point", ErrValueOutOfRange, i)
		}
		r := rune(v.Int64())
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: element %d (%d) is not a valid code point", ErrValueOutOfRange, i, v)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
