package rsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// randReader is the random source used for prime selection and generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for
// testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// IsPrime reports whether num is prime, by trial division over
// [2, ⌊√num⌋]. Deterministic, no side effects, O(√num) — acceptable only
// for the small demonstration values this package works with. Use
// GeneratePrime for cryptographically sized candidates.
func IsPrime(num int64) bool {
	if num <= 1 {
		return false
	}
	if num == 2 {
		return true
	}
	if num%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= num; i += 2 {
		if num%i == 0 {
			return false
		}
	}
	return true
}

// PrimesInRange returns all primes in [low, high] in ascending order.
func PrimesInRange(low, high int64) []int64 {
	var primes []int64
	for n := low; n <= high; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}

// RandomPrimePair draws two distinct primes uniformly from [low, high].
// Equal draws are rejected and retried: p = q collapses the totient to
// (p-1)² and breaks decryption outright, so the pair must be distinct.
func RandomPrimePair(low, high int64) (p, q *big.Int, err error) {
	primes := PrimesInRange(low, high)
	if len(primes) < 2 {
		return nil, nil, fmt.Errorf("%w: fewer than two primes in [%d, %d]", ErrInvalidPrime, low, high)
	}

	count := big.NewInt(int64(len(primes)))
	pIdx, err := rand.Int(reader(), count)
	if err != nil {
		return nil, nil, err
	}

	qIdx := new(big.Int).Set(pIdx)
	for qIdx.Cmp(pIdx) == 0 {
		qIdx, err = rand.Int(reader(), count)
		if err != nil {
			return nil, nil, err
		}
	}

	p = big.NewInt(primes[pIdx.Int64()])
	q = big.NewInt(primes[qIdx.Int64()])
	return p, q, nil
}

// GeneratePrime returns a probable prime with the given bit length, found
// with the Miller-Rabin based generator from crypto/rand. This is the path
// to use for realistically sized keys, where trial division is infeasible.
func GeneratePrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: bit length %d is too small", ErrInvalidPrime, bits)
	}
	return rand.Prime(reader(), bits)
}
