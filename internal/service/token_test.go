package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Okelahbegitu/fesnuk-api/internal/models"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService([]byte("super-secret"))

	issued := time.Now()
	tokenString, expiresAt, err := tokens.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if got, want := expiresAt.Sub(issued).Round(time.Second), TokenTTL; got != want {
		t.Errorf("expiry offset = %v, want %v", got, want)
	}

	claims, err := tokens.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.AccountID != 42 || claims.Username != "alice" {
		t.Fatalf("claims mismatch: got %d/%q, want 42/alice", claims.AccountID, claims.Username)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	tokens := NewTokenService(secret)

	claims := &models.Claims{
		AccountID: 7,
		Username:  "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = tokens.Verify(expired)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Verify error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, _, err := NewTokenService([]byte("right-secret")).Issue(1, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService([]byte("wrong-secret")).Verify(tokenString)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService([]byte("secret")).Verify("not.a.token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Verify_WrongSigningMethod(t *testing.T) {
	t.Parallel()

	// alg=none tokens must be rejected outright.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.Claims{
		AccountID: 1,
		Username:  "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	_, err = NewTokenService([]byte("secret")).Verify(unsigned)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify error = %v, want ErrTokenInvalid", err)
	}
}
