package usecase

import (
	"context"

	"quiz-control/internal/domain/user"
	"quiz-control/internal/infrastructure/cache"
	ucuser "quiz-control/internal/usecase/user"
)

type UserUsecase interface {
	Create(ctx context.Context, in ucuser.CreateInput) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	GetByName(ctx context.Context, nome string) (user.User, error)
	Update(ctx context.Context, id int64, in ucuser.UpdateInput) (user.User, error)
	Delete(ctx context.Context, id int64) error
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository, c *cache.Redis) *User {
	return &User{svc: ucuser.NewService(users, c)}
}

func (u *User) Create(ctx context.Context, in ucuser.CreateInput) (user.User, error) {
	return u.svc.Create(ctx, in)
}

func (u *User) List(ctx context.Context) ([]user.User, error) {
	return u.svc.List(ctx)
}

func (u *User) GetByName(ctx context.Context, nome string) (user.User, error) {
	return u.svc.GetByName(ctx, nome)
}

func (u *User) Update(ctx context.Context, id int64, in ucuser.UpdateInput) (user.User, error) {
	return u.svc.Update(ctx, id, in)
}

func (u *User) Delete(ctx context.Context, id int64) error {
	return u.svc.Delete(ctx, id)
}
