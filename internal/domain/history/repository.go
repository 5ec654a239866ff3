package history

import "context"

type Repository interface {
	Add(ctx context.Context, e Entry) (Entry, error)
	ListByCategory(ctx context.Context, categoria string) ([]Entry, error)
}
