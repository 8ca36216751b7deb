// Package rsa implements the RSA public-key cryptosystem from first
// principles for demonstration purposes.
//
// Unlike crypto/rsa, nothing here is hidden behind a library call: prime
// selection, key derivation, and the modular-exponentiation transform are
// all spelled out so each step of the algorithm can be inspected. The
// trade-off is that the package is intentionally NOT secure:
//
//   - Messages are encrypted symbol by symbol, one integer per code point.
//     The scheme is deterministic and leaks symbol frequencies.
//   - The demonstration primes are small enough to factor by hand.
//   - There is no padding. See the rsautil package for OAEP and PSS over
//     real key sizes.
//
// # Key Generation
//
// Keys are derived from two distinct primes:
//
//	p, q, err := rsa.RandomPrimePair(127, 500)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pub, priv, err := rsa.GenerateKeyPair(p, q)
//
// The public key (N, E) may be shared freely; the private key (N, D) must
// never leave the generating context.
//
// # Encryption and Signatures
//
// All four operations are built on the single Transform primitive,
// value^exponent mod modulus:
//
//	ciphertext, err := rsa.Encrypt("HELLO", pub)
//	plaintext, err := rsa.Decrypt(ciphertext, priv)
//
//	sig, err := rsa.Sign(message, priv, rsa.SHA256)
//	ok, err := rsa.Verify(message, sig, pub, rsa.SHA256)
//
// Every operation validates its inputs and returns one of the sentinel
// errors from errors.go rather than producing silently wrong output.
package rsa
