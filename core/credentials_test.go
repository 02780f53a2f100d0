package core

import (
	"errors"
	"strings"
	"testing"
)

func TestHashCredential_Deterministic(t *testing.T) {
	salt, err := GenerateSalt(2)
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}

	h1, err := HashCredential("secret", salt)
	if err != nil {
		t.Fatalf("HashCredential() error = %v", err)
	}
	h2, err := HashCredential("secret", salt)
	if err != nil {
		t.Fatalf("HashCredential() error = %v", err)
	}

	if h1 != h2 {
		t.Errorf("same credential and salt produced different digests: %s vs %s", h1, h2)
	}
}

func TestHashCredential_DifferentSalts(t *testing.T) {
	s1, _ := GenerateSalt(2)
	s2, _ := GenerateSalt(2)
	if s1 == s2 {
		t.Fatal("GenerateSalt() produced identical salts")
	}

	h1, _ := HashCredential("secret", s1)
	h2, _ := HashCredential("secret", s2)
	if h1 == h2 {
		t.Error("different salts produced the same digest")
	}
}

func TestHashCredential_BadSalt(t *testing.T) {
	if _, err := HashCredential("secret", "not-a-salt"); !errors.Is(err, ErrInvalidSalt) {
		t.Errorf("HashCredential() error = %v, want %v", err, ErrInvalidSalt)
	}
	if _, err := HashCredential("secret", "zero$abcd"); !errors.Is(err, ErrInvalidSalt) {
		t.Errorf("HashCredential() error = %v, want %v", err, ErrInvalidSalt)
	}
}

func TestGenerateSalt_EmbedsRounds(t *testing.T) {
	salt, err := GenerateSalt(7)
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}
	if !strings.HasPrefix(salt, "7$") {
		t.Errorf("GenerateSalt(7) = %q, want a 7$ prefix", salt)
	}

	// Non-positive rounds fall back to the default cost.
	salt, err = GenerateSalt(0)
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}
	if !strings.HasPrefix(salt, "10$") {
		t.Errorf("GenerateSalt(0) = %q, want the default 10$ prefix", salt)
	}
}

func TestVerifyDigest(t *testing.T) {
	if !VerifyDigest("abc", "abc") {
		t.Error("VerifyDigest() = false for equal digests")
	}
	if VerifyDigest("abc", "abd") {
		t.Error("VerifyDigest() = true for different digests")
	}
	if VerifyDigest("abc", "abcd") {
		t.Error("VerifyDigest() = true for different lengths")
	}
}
