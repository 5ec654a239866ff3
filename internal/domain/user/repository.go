package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// UpdateFields carries a partial update; nil fields are left untouched.
type UpdateFields struct {
	Nome       *string
	CEP        *string
	Cidade     *string
	Estado     *string
	Logradouro *string
	Bairro     *string
}

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByName(ctx context.Context, nome string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, id int64, in UpdateFields) (User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
