package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clientescrm/api-clientes/internal/core/domain"
)

const defaultTokenTTL = 60 * time.Minute

// Claims are the facts embedded in an access token. The role always
// originates from a just-verified credential lookup, never from the client.
type Claims struct {
	Subject string
	Role    string
}

// TokenService issues and validates stateless signed bearer tokens. Tokens
// are self-contained: validity is determined purely by signature and expiry
// at verification time, nothing is stored server-side.
type TokenService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenService builds a TokenService from the configured secret, signing
// algorithm name, and token lifetime. An empty secret or an unknown algorithm
// is a configuration error; callers treat it as fatal at process start.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token: secret must not be empty")
	}

	var method *jwt.SigningMethodHMAC
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("token: unsupported signing algorithm %q", algorithm)
	}

	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &TokenService{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue signs a token carrying the subject, role, and an absolute expiry of
// now + ttl.
func (s *TokenService) Issue(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(s.method, claims)
	return t.SignedString(s.secret)
}

// Validate verifies the signature and expiry of a token and returns its
// claims. Every failure mode (malformed structure, signature mismatch,
// expired) returns the same domain.ErrInvalidToken so callers cannot tell
// which check failed.
func (s *TokenService) Validate(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return &Claims{Subject: subject, Role: role}, nil
}
