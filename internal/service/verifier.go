package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/Okelahbegitu/fesnuk-api/internal/config"
)

// Verifier abstracts how a submitted password is checked against the stored
// credential. The strategy is chosen once from configuration; hashing on
// signup and verification on login always go through the same strategy.
type Verifier interface {
	Hash(password string) (string, error)
	Verify(stored, submitted string) bool
}

// PlaintextVerifier stores passwords as-is and compares in constant time.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

// BcryptVerifier stores salted bcrypt hashes.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func (BcryptVerifier) Verify(stored, submitted string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}

// NewVerifier selects the verifier for the configured hashing strategy.
func NewVerifier(strategy string) Verifier {
	if strategy == config.HashPlaintext {
		return PlaintextVerifier{}
	}
	return BcryptVerifier{}
}
