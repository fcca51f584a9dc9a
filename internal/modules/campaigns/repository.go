package campaigns

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("campaign not found")

type Repository interface {
	List(ctx context.Context) ([]Campaign, error)
	Get(ctx context.Context, id string) (Campaign, error)
	Create(ctx context.Context, c Campaign) error
	Update(ctx context.Context, id, title, validText string) error
	AddItem(ctx context.Context, it Item) error
}
