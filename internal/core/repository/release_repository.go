package repository

import (
	"context"
	"time"

	"github.com/annelie/wax/internal/api/util"
	"github.com/annelie/wax/internal/core/domain"
)

// ReleaseFilter embeds ListFilter for generic query/order/pagination
type ReleaseFilter struct {
	util.ListFilter
}

type ReleaseRepository interface {
	Create(ctx context.Context, release *domain.Release) error

	// FindByID returns the release regardless of its soft-delete state;
	// the service decides how a deleted release is reported.
	FindByID(ctx context.Context, id string) (*domain.Release, error)

	Update(ctx context.Context, release *domain.Release) error

	// SoftDelete marks the release deleted without removing the row.
	SoftDelete(ctx context.Context, id string, at time.Time) error

	// List and Count exclude soft-deleted releases.
	List(ctx context.Context, filter ReleaseFilter) ([]*domain.Release, error)
	Count(ctx context.Context, filter ReleaseFilter) (int, error)

	// CountByArtist counts live releases of an artist (delete guard).
	CountByArtist(ctx context.Context, artistID string) (int, error)

	// CountByTag counts live releases carrying a tag (delete guard).
	CountByTag(ctx context.Context, tagSlug string) (int, error)

	// SetTags replaces the release's tag set with the given slugs.
	SetTags(ctx context.Context, releaseID string, tagSlugs []string) error

	// FindTags returns the release's tags ordered by slug.
	FindTags(ctx context.Context, releaseID string) ([]*domain.Tag, error)
}
