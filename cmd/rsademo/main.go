// Command rsademo encrypts and decrypts a message with the from-scratch
// RSA engine, printing the intermediate values the way the textbook
// presents them: code points, the per-symbol ciphertext, and the recovered
// plaintext.
//
// The message comes from the -message flag, the CYBER_MESSAGE environment
// variable (a .env file in the working directory is honored), or stdin, in
// that order.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/abliveira/cyber/rsa"
)

func main() {
	message := flag.String("message", "", "message to encrypt (falls back to CYBER_MESSAGE, then stdin)")
	low := flag.Int64("low", 127, "lower bound of the prime candidate range")
	high := flag.Int64("high", 500, "upper bound of the prime candidate range")
	flag.Parse()

	// A missing .env is fine; the variable may come from the environment.
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	msg := resolveMessage(*message)

	p, q, err := rsa.RandomPrimePair(*low, *high)
	if err != nil {
		logrus.WithError(err).Error("prime selection failed")
		os.Exit(1)
	}
	pub, priv, err := rsa.GenerateKeyPair(p, q)
	if err != nil {
		logrus.WithError(err).Error("key generation failed")
		os.Exit(1)
	}
	logrus.WithFields(logrus.Fields{"p": p, "q": q, "n": pub.N, "e": pub.E}).Debug("key pair ready")

	fmt.Println("=== Encryption & Decryption Demo ===")
	fmt.Printf("Plaintext message: %s\n", msg)

	encoded, err := rsa.Encode(msg, pub.N)
	if err != nil {
		logrus.WithError(err).Error("message does not fit the modulus; rerun with a larger prime range")
		os.Exit(1)
	}
	fmt.Printf("Plaintext as code points: %s\n", joinValues(encoded))

	ciphertext, err := rsa.Encrypt(msg, pub)
	if err != nil {
		logrus.WithError(err).Error("encryption failed")
		os.Exit(1)
	}
	fmt.Printf("Encrypted ciphertext: %s\n", joinValues(ciphertext))

	decrypted, err := rsa.Decrypt(ciphertext, priv)
	if err != nil {
		logrus.WithError(err).Error("decryption failed")
		os.Exit(1)
	}
	fmt.Printf("Decrypted with private key: %s\n", decrypted)
	fmt.Printf("Decryption successful? %v\n", decrypted == msg)
}

func resolveMessage(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CYBER_MESSAGE"); env != "" {
		return env
	}

	fmt.Print("Enter a message: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "Some message"
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "Some message"
	}
	return line
}

// joinValues renders a ciphertext the way the demo prints it: decimal
// values separated by spaces.
func joinValues(values []*big.Int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
