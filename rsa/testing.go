package rsa

import "io"

// SetRandReaderForTesting sets the random reader used by RandomPrimePair
// and GeneratePrime. This is intended for testing only. Returns a function
// to restore the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
