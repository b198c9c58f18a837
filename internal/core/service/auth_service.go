package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/ports"
)

// AuthService implements username/password login.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login verifies the credentials and returns a signed access token. An
// unknown username and a wrong password both produce ErrInvalidCredentials;
// the caller cannot tell which. The role embedded in the token always comes
// from the credential row just read.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		s.log.Error().Err(err).Str("username", user.Username).Msg("failed to sign token")
		return "", err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return token, nil
}
