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

type TrackService struct {
	trackRepo   repository.TrackRepository
	releaseServ *ReleaseService
}

func NewTrackService(trackRepo repository.TrackRepository, releaseServ *ReleaseService) *TrackService {
	return &TrackService{
		trackRepo:   trackRepo,
		releaseServ: releaseServ,
	}
}

// AddTrack validates and persists a new track on a release. The release
// must exist and be live; its failure (NotFound/Gone) propagates unchanged.
func (s *TrackService) AddTrack(ctx context.Context, track *domain.Track) result.Of[*domain.Track] {
	if r := s.releaseServ.GetRelease(ctx, track.ReleaseID); r.IsFailure() {
		return result.ToResultOf[*domain.Track](r.Err())
	}

	if r := s.validateTrack(ctx, track); r.IsFailure() {
		return result.ToResultOf[*domain.Track](r.Err())
	}

	if err := s.trackRepo.Create(ctx, track); err != nil {
		return result.FailureOf[*domain.Track](result.InternalFrom(err))
	}
	return result.SuccessOf(track)
}

// GetTrack retrieves a track by ID.
func (s *TrackService) GetTrack(ctx context.Context, id string) result.Of[*domain.Track] {
	track, err := s.trackRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Track](result.NotFound(fmt.Sprintf("track not found: %s", id)))
	}
	if err != nil {
		return result.FailureOf[*domain.Track](result.InternalFrom(err))
	}
	return result.SuccessOf(track)
}

// ListTracks returns a release's tracks in position order.
func (s *TrackService) ListTracks(ctx context.Context, releaseID string) result.Of[[]*domain.Track] {
	if r := s.releaseServ.GetRelease(ctx, releaseID); r.IsFailure() {
		return result.ToResultOf[[]*domain.Track](r.Err())
	}

	tracks, err := s.trackRepo.ListByRelease(ctx, releaseID)
	if err != nil {
		return result.FailureOf[[]*domain.Track](result.InternalFrom(err))
	}
	return result.SuccessOf(tracks)
}

// UpdateTrack validates and persists changes to an existing track.
func (s *TrackService) UpdateTrack(ctx context.Context, track *domain.Track) result.Of[*domain.Track] {
	if r := s.validateTrack(ctx, track); r.IsFailure() {
		return result.ToResultOf[*domain.Track](r.Err())
	}

	track.UpdatedAt = time.Now().UTC()
	err := s.trackRepo.Update(ctx, track)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Track](result.NotFound(fmt.Sprintf("track not found: %s", track.ID)))
	}
	if err != nil {
		return result.FailureOf[*domain.Track](result.InternalFrom(err))
	}
	return result.SuccessOf(track)
}

// DeleteTrack removes a track. A missing target means nothing to act on.
func (s *TrackService) DeleteTrack(ctx context.Context, id string) result.Result {
	err := s.trackRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Failure(result.NoContent(fmt.Sprintf("track not found: %s", id)))
	}
	if err != nil {
		return result.Failure(result.InternalFrom(err))
	}
	return result.Success()
}

func (s *TrackService) validateTrack(ctx context.Context, track *domain.Track) result.Result {
	var details []string

	if track.Title == "" {
		details = append(details, "Title is required")
	}
	if track.Position < 1 {
		details = append(details, "Position must be positive")
	}
	if track.DurationSeconds != nil && *track.DurationSeconds <= 0 {
		details = append(details, "DurationSeconds must be positive")
	}

	// Position uniqueness within the release; the occupant may be the
	// track itself when updating.
	if track.Position >= 1 {
		existing, err := s.trackRepo.FindByPosition(ctx, track.ReleaseID, track.Position)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return result.Failure(result.InternalFrom(err))
		}
		if err == nil && existing.ID != track.ID {
			details = append(details, fmt.Sprintf("Position %d is already taken", track.Position))
		}
	}

	if len(details) > 0 {
		return result.Validation("track failed validation", details...).ToResult()
	}
	return result.Success()
}
