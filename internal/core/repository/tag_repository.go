package repository

import (
	"context"

	"github.com/annelie/wax/internal/core/domain"
)

type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	FindBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, slug string) error
	List(ctx context.Context) ([]*domain.Tag, error)
}
