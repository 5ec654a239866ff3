package user

import (
	"context"
	"errors"
	"strings"

	"quiz-control/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// HistoryCache drops cached by-categoria listings. They carry the owner's
// nome, so they go stale whenever a user is renamed or removed.
type HistoryCache interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type CreateInput struct {
	Nome       string
	Email      string
	Senha      string
	CEP        string
	Logradouro string
	Bairro     string
	Cidade     string
	Estado     string
}

type UpdateInput struct {
	Nome       *string
	CEP        *string
	Cidade     *string
	Estado     *string
	Logradouro *string
	Bairro     *string
}

type Service struct {
	users user.Repository
	cache HistoryCache
}

func NewService(users user.Repository, c HistoryCache) *Service {
	return &Service{users: users, cache: c}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (user.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateCreate(in); err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	created, err := s.users.Create(ctx, user.User{
		Nome:       strings.TrimSpace(in.Nome),
		Email:      in.Email,
		SenhaHash:  string(hash),
		CEP:        strings.TrimSpace(in.CEP),
		Logradouro: strings.TrimSpace(in.Logradouro),
		Bairro:     strings.TrimSpace(in.Bairro),
		Cidade:     strings.TrimSpace(in.Cidade),
		Estado:     normalizeEstado(in.Estado),
	})
	if err != nil {
		return user.User{}, err
	}
	return sanitize(created), nil
}

func (s *Service) List(ctx context.Context) ([]user.User, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i] = sanitize(list[i])
	}
	return list, nil
}

func (s *Service) GetByName(ctx context.Context, nome string) (user.User, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return user.User{}, ErrInvalidInput
	}
	u, err := s.users.GetByName(ctx, nome)
	if err != nil {
		return user.User{}, err
	}
	return sanitize(u), nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (user.User, error) {
	if id <= 0 {
		return user.User{}, ErrInvalidInput
	}
	if in.Estado != nil {
		estado := normalizeEstado(*in.Estado)
		if len(estado) != 2 {
			return user.User{}, ErrInvalidInput
		}
		in.Estado = &estado
	}

	u, err := s.users.Update(ctx, id, user.UpdateFields{
		Nome:       in.Nome,
		CEP:        in.CEP,
		Cidade:     in.Cidade,
		Estado:     in.Estado,
		Logradouro: in.Logradouro,
		Bairro:     in.Bairro,
	})
	if err != nil {
		return user.User{}, err
	}
	if in.Nome != nil && s.cache != nil {
		// the new nome must reach cached by-categoria rows, which join it in
		_ = s.cache.DeleteByPattern(ctx, "historicos:categoria:*")
	}
	return sanitize(u), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	count, err := s.users.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if count == 0 {
		return user.ErrNotFound
	}
	if s.cache != nil {
		// cascaded historico rows may be cached under any categoria
		_ = s.cache.DeleteByPattern(ctx, "historicos:categoria:*")
	}
	return nil
}

func validateCreate(in CreateInput) error {
	required := []string{in.Nome, in.Email, in.Senha, in.CEP, in.Logradouro, in.Bairro, in.Cidade, in.Estado}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrInvalidInput
		}
	}
	if len(normalizeEstado(in.Estado)) != 2 {
		return ErrInvalidInput
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEstado(estado string) string {
	return strings.ToUpper(strings.TrimSpace(estado))
}

func sanitize(u user.User) user.User {
	u.SenhaHash = ""
	return u
}
