package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
	"github.com/annelie/wax/pkg/result"
)

type ArtistService struct {
	artistRepo  repository.ArtistRepository
	releaseRepo repository.ReleaseRepository
}

func NewArtistService(
	artistRepo repository.ArtistRepository,
	releaseRepo repository.ReleaseRepository,
) *ArtistService {
	return &ArtistService{
		artistRepo:  artistRepo,
		releaseRepo: releaseRepo,
	}
}

// CreateArtist validates and persists a new artist.
func (s *ArtistService) CreateArtist(ctx context.Context, artist *domain.Artist) result.Of[*domain.Artist] {
	if details := validateArtist(artist); len(details) > 0 {
		return result.ToResultOf[*domain.Artist](result.Validation("artist failed validation", details...))
	}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return result.FailureOf[*domain.Artist](result.InternalFrom(err))
	}
	return result.SuccessOf(artist)
}

// GetArtist retrieves an artist by ID.
func (s *ArtistService) GetArtist(ctx context.Context, id string) result.Of[*domain.Artist] {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Artist](result.NotFound(fmt.Sprintf("artist not found: %s", id)))
	}
	if err != nil {
		return result.FailureOf[*domain.Artist](result.InternalFrom(err))
	}
	return result.SuccessOf(artist)
}

// ListArtists lists artists with filtering.
func (s *ArtistService) ListArtists(ctx context.Context, filter repository.ArtistFilter) result.Of[[]*domain.Artist] {
	artists, err := s.artistRepo.List(ctx, filter)
	if err != nil {
		return result.FailureOf[[]*domain.Artist](result.InternalFrom(err))
	}
	return result.SuccessOf(artists)
}

// CountArtists counts artists with filtering.
func (s *ArtistService) CountArtists(ctx context.Context, filter repository.ArtistFilter) result.Of[int] {
	count, err := s.artistRepo.Count(ctx, filter)
	if err != nil {
		return result.FailureOf[int](result.InternalFrom(err))
	}
	return result.SuccessOf(count)
}

// UpdateArtist validates and persists changes to an existing artist.
// Validation runs first; a valid request for a missing artist is NotFound,
// never a validation failure.
func (s *ArtistService) UpdateArtist(ctx context.Context, artist *domain.Artist) result.Of[*domain.Artist] {
	if details := validateArtist(artist); len(details) > 0 {
		return result.ToResultOf[*domain.Artist](result.Validation("artist failed validation", details...))
	}

	artist.UpdatedAt = time.Now().UTC()
	err := s.artistRepo.Update(ctx, artist)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Artist](result.NotFound(fmt.Sprintf("artist not found: %s", artist.ID)))
	}
	if err != nil {
		return result.FailureOf[*domain.Artist](result.InternalFrom(err))
	}
	return result.SuccessOf(artist)
}

// DeleteArtist removes an artist. Artists with live releases are refused.
func (s *ArtistService) DeleteArtist(ctx context.Context, id string) result.Result {
	count, err := s.releaseRepo.CountByArtist(ctx, id)
	if err != nil {
		return result.Failure(result.InternalFrom(err))
	}
	if count > 0 {
		return result.Validation(
			"artist cannot be deleted",
			fmt.Sprintf("Artist has %d release(s); delete them first", count),
		).ToResult()
	}

	err = s.artistRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Failure(result.NoContent(fmt.Sprintf("artist not found: %s", id)))
	}
	if err != nil {
		return result.Failure(result.InternalFrom(err))
	}
	return result.Success()
}

func validateArtist(artist *domain.Artist) []string {
	var details []string
	if artist.Name == "" {
		details = append(details, "Name is required")
	}
	if artist.Country != nil && len(*artist.Country) != 2 {
		details = append(details, "Country must be a two-letter ISO 3166-1 code")
	}
	return details
}
