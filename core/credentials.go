package core

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-crypt/x/pbkdf2"
)

const (
	// DefaultHashRounds is the default cost parameter for credential hashing.
	DefaultHashRounds = 10

	saltBytes  = 16
	digestSize = 32

	// Each round contributes this many PBKDF2 iterations.
	iterationsPerRound = 10000
)

// GenerateSalt produces a random salt carrying its cost parameter, in the
// form "rounds$hex". Embedding the rounds lets HashCredential recompute a
// digest from the stored salt alone.
func GenerateSalt(rounds int) (string, error) {
	if rounds < 1 {
		rounds = DefaultHashRounds
	}
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strconv.Itoa(rounds) + "$" + hex.EncodeToString(buf), nil
}

// HashCredential derives a hex digest from a plaintext credential and a salt
// produced by GenerateSalt. The same (plaintext, salt) pair always yields the
// same digest.
func HashCredential(plaintext, salt string) (string, error) {
	rounds, err := saltRounds(salt)
	if err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), rounds*iterationsPerRound, digestSize, sha256.New)
	return hex.EncodeToString(key), nil
}

// VerifyDigest compares two digests in constant time.
func VerifyDigest(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// saltRounds extracts the cost parameter embedded in a salt.
func saltRounds(salt string) (int, error) {
	prefix, _, found := strings.Cut(salt, "$")
	if !found {
		return 0, fmt.Errorf("%w: missing rounds prefix", ErrInvalidSalt)
	}
	rounds, err := strconv.Atoi(prefix)
	if err != nil || rounds < 1 {
		return 0, fmt.Errorf("%w: bad rounds prefix %q", ErrInvalidSalt, prefix)
	}
	return rounds, nil
}
