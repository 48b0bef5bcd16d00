package repository

import (
	"context"

	"github.com/annelie/wax/internal/core/domain"
)

type ReleaseTypeRepository interface {
	FindBySlug(ctx context.Context, slug string) (*domain.ReleaseType, error)
	List(ctx context.Context) ([]*domain.ReleaseType, error)
}
