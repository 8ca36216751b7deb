// Command keygen walks through RSA key generation step by step: prime
// selection, the modulus and totient, the public exponent, and the derived
// private exponent.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/abliveira/cyber/rsa"
)

func main() {
	low := flag.Int64("low", 127, "lower bound of the prime candidate range")
	high := flag.Int64("high", 500, "upper bound of the prime candidate range")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	log := logrus.WithFields(logrus.Fields{"low": *low, "high": *high})

	log.Debug("selecting candidate primes")
	p, q, err := rsa.RandomPrimePair(*low, *high)
	if err != nil {
		log.WithError(err).Error("prime selection failed")
		os.Exit(1)
	}

	pub, priv, err := rsa.GenerateKeyPair(p, q)
	if err != nil {
		log.WithError(err).Error("key generation failed")
		os.Exit(1)
	}

	one := big.NewInt(1)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	fmt.Println("=== RSA Key Generation ===")
	fmt.Printf("Prime p: %v\n", p)
	fmt.Printf("Prime q: %v\n", q)
	fmt.Printf("n = p * q = %v\n", pub.N)
	fmt.Printf("phi(n) = (p-1)*(q-1) = %v\n", phi)
	fmt.Printf("Public exponent e: %v\n", pub.E)
	fmt.Printf("Private exponent d: %v\n", priv.D)
	fmt.Printf("Public key:  (n=%v, e=%v)\n", pub.N, pub.E)
	fmt.Printf("Private key: (n=%v, d=%v)\n", priv.N, priv.D)
}
