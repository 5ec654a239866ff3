package history

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"quiz-control/internal/domain/history"
	"quiz-control/internal/domain/user"
)

// CategoryCache holds serialized by-categoria listings keyed per categoria.
type CategoryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoResults    = errors.New("no history entries found")
	ErrInternal     = errors.New("internal error")
)

// score keeps the acertos/total form the quiz client submits, e.g. "7/10"
var scoreRe = regexp.MustCompile(`^\d+/\d+$`)

type AddInput struct {
	UserID    int64
	Categoria string
	Score     string
	Data      string // RFC3339, optional; empty means insertion time
}

type Service struct {
	users     user.Repository
	historico history.Repository
	cache     CategoryCache
}

func NewService(users user.Repository, historico history.Repository, c CategoryCache) *Service {
	return &Service{users: users, historico: historico, cache: c}
}

// Add appends a quiz result to an existing user and returns the user with
// its refreshed history collection.
func (s *Service) Add(ctx context.Context, in AddInput) (user.User, error) {
	if in.UserID <= 0 {
		return user.User{}, ErrInvalidInput
	}
	categoria := strings.TrimSpace(in.Categoria)
	score := strings.TrimSpace(in.Score)
	if categoria == "" || !scoreRe.MatchString(score) {
		return user.User{}, ErrInvalidInput
	}

	var data time.Time
	if raw := strings.TrimSpace(in.Data); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return user.User{}, ErrInvalidInput
		}
		data = parsed
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		return user.User{}, err
	}

	if _, err := s.historico.Add(ctx, history.Entry{
		Categoria:    categoria,
		Score:        score,
		DataInsercao: data,
		UsuarioID:    in.UserID,
	}); err != nil {
		return user.User{}, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, categoryCacheKey(categoria))
	}

	u, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	u.SenhaHash = ""
	return u, nil
}

func (s *Service) ByUserName(ctx context.Context, nome string) (user.User, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return user.User{}, ErrInvalidInput
	}
	u, err := s.users.GetByName(ctx, nome)
	if err != nil {
		return user.User{}, err
	}
	u.SenhaHash = ""
	return u, nil
}

func (s *Service) ByCategory(ctx context.Context, categoria string) ([]history.Entry, error) {
	categoria = strings.TrimSpace(categoria)
	if categoria == "" {
		return nil, ErrInvalidInput
	}

	key := categoryCacheKey(categoria)
	if s.cache != nil {
		var cached []history.Entry
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			if len(cached) == 0 {
				return nil, ErrNoResults
			}
			return cached, nil
		}
	}

	entries, err := s.historico.ListByCategory(ctx, categoria)
	if err != nil {
		return nil, ErrInternal
	}
	if len(entries) == 0 {
		return nil, ErrNoResults
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, entries, 0)
	}
	return entries, nil
}

func categoryCacheKey(categoria string) string {
	return "historicos:categoria:" + categoria
}
