package post_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// List returns every post, newest first. Posts sharing a created_at
	// come back in descending id order.
	List(ctx context.Context) ([]*model.Post, error)
}
