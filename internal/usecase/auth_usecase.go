package usecase

import (
	"context"

	"quiz-control/internal/domain/user"
	"quiz-control/internal/pkg/jwt"
	ucauth "quiz-control/internal/usecase/auth"
)

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error)
}

type Auth struct {
	svc *ucauth.Service
}

func NewAuthUsecase(users user.Repository, tokens jwt.Service) *Auth {
	return &Auth{svc: ucauth.NewService(users, tokens)}
}

func (a *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	return a.svc.Login(ctx, in)
}
