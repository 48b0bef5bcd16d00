package repository

import (
	"context"

	"github.com/annelie/wax/internal/core/domain"
)

type TrackRepository interface {
	Create(ctx context.Context, track *domain.Track) error
	FindByID(ctx context.Context, id string) (*domain.Track, error)
	Update(ctx context.Context, track *domain.Track) error
	Delete(ctx context.Context, id string) error

	// ListByRelease returns the release's tracks ordered by position.
	ListByRelease(ctx context.Context, releaseID string) ([]*domain.Track, error)

	// FindByPosition looks up the track occupying a position on a release.
	FindByPosition(ctx context.Context, releaseID string, position int) (*domain.Track, error)
}
