package password

import (
	"errors"
	"testing"
)

var pepper = []byte("supersecretpepper")

func TestGenerateSalt(t *testing.T) {
	s1, err := GenerateSalt(16)
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}
	if len(s1) != 32 { // 16 bytes hex encoded
		t.Errorf("salt length = %d, want 32", len(s1))
	}

	s2, err := GenerateSalt(16)
	if err != nil {
		t.Fatal(err)
	}
	if s1 == s2 {
		t.Error("two salts were identical")
	}
}

func TestHashVerify(t *testing.T) {
	salt, err := GenerateSalt(16)
	if err != nil {
		t.Fatal(err)
	}

	h, err := Hash("CorrectHorseBatteryStaple", salt, pepper)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	ok, err := Verify("CorrectHorseBatteryStaple", salt, h, pepper)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Verify() = false for the correct password")
	}

	ok, err = Verify("wrong password", salt, h, pepper)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Verify() = true for the wrong password")
	}

	// The pepper is part of the key: without it the hash cannot be
	// recomputed even with the salt and password in hand.
	ok, err = Verify("CorrectHorseBatteryStaple", salt, h, []byte("other pepper"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Verify() = true under a different pepper")
	}
}

func TestHash_SaltSeparatesEqualPasswords(t *testing.T) {
	h1, err := Hash("hunter2", "salt-a", pepper)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Hash("hunter2", "salt-b", pepper)
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("identical passwords produced identical hashes under different salts")
	}
}

func TestHash_EmptyPepper(t *testing.T) {
	if _, err := Hash("pw", "salt", nil); !errors.Is(err, ErrEmptyPepper) {
		t.Errorf("expected ErrEmptyPepper, got %v", err)
	}
}

func TestBcrypt(t *testing.T) {
	hash, err := BcryptHash("CorrectHorseBatteryStaple")
	if err != nil {
		t.Fatalf("BcryptHash() error = %v", err)
	}

	if !BcryptVerify("CorrectHorseBatteryStaple", hash) {
		t.Error("BcryptVerify() = false for the correct password")
	}
	if BcryptVerify("wrong", hash) {
		t.Error("BcryptVerify() = true for the wrong password")
	}

	// Bcrypt embeds a random salt, so rehashing the same password differs.
	hash2, err := BcryptHash("CorrectHorseBatteryStaple")
	if err != nil {
		t.Fatal(err)
	}
	if hash == hash2 {
		t.Error("two bcrypt hashes of the same password were identical")
	}
}
