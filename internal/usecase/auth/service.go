package auth

import (
	"context"
	"errors"
	"strings"

	"quiz-control/internal/domain/user"
	"quiz-control/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

type LoginInput struct {
	Email string
	Senha string
}

type Service struct {
	users  user.Repository
	tokens jwt.Service
}

func NewService(users user.Repository, tokens jwt.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// Login verifies the identity claim against the stored bcrypt digest.
// The raw senha never touches the store.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Senha == "" {
		return user.User{}, "", ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrUserNotFound
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Nome)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	u.SenhaHash = ""
	return u, token, nil
}
