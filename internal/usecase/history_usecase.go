package usecase

import (
	"context"

	"quiz-control/internal/domain/history"
	"quiz-control/internal/domain/user"
	"quiz-control/internal/infrastructure/cache"
	uchistory "quiz-control/internal/usecase/history"
)

type HistoryUsecase interface {
	Add(ctx context.Context, in uchistory.AddInput) (user.User, error)
	ByUserName(ctx context.Context, nome string) (user.User, error)
	ByCategory(ctx context.Context, categoria string) ([]history.Entry, error)
}

type History struct {
	svc *uchistory.Service
}

func NewHistoryUsecase(users user.Repository, historico history.Repository, c *cache.Redis) *History {
	return &History{svc: uchistory.NewService(users, historico, c)}
}

func (h *History) Add(ctx context.Context, in uchistory.AddInput) (user.User, error) {
	return h.svc.Add(ctx, in)
}

func (h *History) ByUserName(ctx context.Context, nome string) (user.User, error) {
	return h.svc.ByUserName(ctx, nome)
}

func (h *History) ByCategory(ctx context.Context, categoria string) ([]history.Entry, error) {
	return h.svc.ByCategory(ctx, categoria)
}
