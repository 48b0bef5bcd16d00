package repository

import (
	"context"

	"github.com/annelie/wax/internal/api/util"
	"github.com/annelie/wax/internal/core/domain"
)

// ArtistFilter embeds ListFilter for generic query/order/pagination
type ArtistFilter struct {
	util.ListFilter
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *domain.Artist) error
	FindByID(ctx context.Context, id string) (*domain.Artist, error)
	Update(ctx context.Context, artist *domain.Artist) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ArtistFilter) ([]*domain.Artist, error)
	Count(ctx context.Context, filter ArtistFilter) (int, error)
}
