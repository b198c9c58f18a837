package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clientescrm/api-clientes/internal/core/domain"
)

func TestNewTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService("", "HS256", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestNewTokenService_RejectsUnknownAlgorithm(t *testing.T) {
	if _, err := NewTokenService("secret", "RS256", time.Hour); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.Issue("ana", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "ana" {
		t.Fatalf("expected subject ana, got %q", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ana",
		"role": "admin",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// A tampered signature and an expired token must be indistinguishable.
func TestTokenService_TamperedSignatureSameError(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	other, err := NewTokenService("other-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	foreign, err := other.Issue("ana", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, tamperedErr := svc.Validate(foreign)
	if !errors.Is(tamperedErr, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", tamperedErr)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ana", "role": "admin", "exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, _ := expired.SignedString([]byte("secret"))
	_, expiredErr := svc.Validate(signed)

	if tamperedErr.Error() != expiredErr.Error() {
		t.Fatalf("tampered and expired errors differ: %v vs %v", tamperedErr, expiredErr)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	if _, err := svc.Validate("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_RejectsForeignAlgorithm(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "ana", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
