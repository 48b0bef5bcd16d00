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

type ReleaseService struct {
	releaseRepo repository.ReleaseRepository
	artistRepo  repository.ArtistRepository
	typeRepo    repository.ReleaseTypeRepository
	tagRepo     repository.TagRepository
}

func NewReleaseService(
	releaseRepo repository.ReleaseRepository,
	artistRepo repository.ArtistRepository,
	typeRepo repository.ReleaseTypeRepository,
	tagRepo repository.TagRepository,
) *ReleaseService {
	return &ReleaseService{
		releaseRepo: releaseRepo,
		artistRepo:  artistRepo,
		typeRepo:    typeRepo,
		tagRepo:     tagRepo,
	}
}

// CreateRelease validates and persists a new release. All violations are
// collected into a single validation error; nothing is persisted when any
// check fails.
func (s *ReleaseService) CreateRelease(ctx context.Context, release *domain.Release) result.Of[*domain.Release] {
	if r := s.validateRelease(ctx, release); r.IsFailure() {
		return result.ToResultOf[*domain.Release](r.Err())
	}

	if err := s.releaseRepo.Create(ctx, release); err != nil {
		return result.FailureOf[*domain.Release](result.InternalFrom(err))
	}
	return result.SuccessOf(release)
}

// GetRelease retrieves a release. Soft-deleted releases report Gone, not
// NotFound: the row still exists but is permanently unavailable.
func (s *ReleaseService) GetRelease(ctx context.Context, id string) result.Of[*domain.Release] {
	release, err := s.releaseRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Release](result.NotFound(fmt.Sprintf("release not found: %s", id)))
	}
	if err != nil {
		return result.FailureOf[*domain.Release](result.InternalFrom(err))
	}
	if release.IsDeleted() {
		return result.FailureOf[*domain.Release](result.Gone(fmt.Sprintf("release has been removed: %s", id)))
	}
	return result.SuccessOf(release)
}

// ListReleases lists live releases with filtering.
func (s *ReleaseService) ListReleases(ctx context.Context, filter repository.ReleaseFilter) result.Of[[]*domain.Release] {
	releases, err := s.releaseRepo.List(ctx, filter)
	if err != nil {
		return result.FailureOf[[]*domain.Release](result.InternalFrom(err))
	}
	return result.SuccessOf(releases)
}

// CountReleases counts live releases with filtering.
func (s *ReleaseService) CountReleases(ctx context.Context, filter repository.ReleaseFilter) result.Of[int] {
	count, err := s.releaseRepo.Count(ctx, filter)
	if err != nil {
		return result.FailureOf[int](result.InternalFrom(err))
	}
	return result.SuccessOf(count)
}

// UpdateRelease validates and persists changes to an existing release.
// Validation runs first; validation success does not imply existence, so a
// valid request for a missing release is NotFound.
func (s *ReleaseService) UpdateRelease(ctx context.Context, release *domain.Release) result.Of[*domain.Release] {
	if r := s.validateRelease(ctx, release); r.IsFailure() {
		return result.ToResultOf[*domain.Release](r.Err())
	}

	release.UpdatedAt = time.Now().UTC()
	err := s.releaseRepo.Update(ctx, release)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Release](result.NotFound(fmt.Sprintf("release not found: %s", release.ID)))
	}
	if err != nil {
		return result.FailureOf[*domain.Release](result.InternalFrom(err))
	}
	return result.SuccessOf(release)
}

// DeleteRelease soft-deletes a release. A missing (or already deleted)
// target means there is nothing to act on.
func (s *ReleaseService) DeleteRelease(ctx context.Context, id string) result.Result {
	err := s.releaseRepo.SoftDelete(ctx, id, time.Now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		return result.Failure(result.NoContent(fmt.Sprintf("release not found: %s", id)))
	}
	if err != nil {
		return result.Failure(result.InternalFrom(err))
	}
	return result.Success()
}

// SetTags replaces the release's tag set. Unknown slugs are collected and
// reported together; the tag set is untouched on failure. Repeated slugs
// collapse to one membership, matching set semantics.
func (s *ReleaseService) SetTags(ctx context.Context, releaseID string, tagSlugs []string) result.Of[[]*domain.Tag] {
	if r := s.GetRelease(ctx, releaseID); r.IsFailure() {
		return result.ToResultOf[[]*domain.Tag](r.Err())
	}

	seen := make(map[string]bool, len(tagSlugs))
	slugs := make([]string, 0, len(tagSlugs))
	for _, slug := range tagSlugs {
		if seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
	}

	var details []string
	for _, slug := range slugs {
		_, err := s.tagRepo.FindBySlug(ctx, slug)
		if errors.Is(err, repository.ErrNotFound) {
			details = append(details, fmt.Sprintf("Tag %q is invalid", slug))
			continue
		}
		if err != nil {
			return result.FailureOf[[]*domain.Tag](result.InternalFrom(err))
		}
	}
	if len(details) > 0 {
		return result.ToResultOf[[]*domain.Tag](result.Validation("tags failed validation", details...))
	}

	if err := s.releaseRepo.SetTags(ctx, releaseID, slugs); err != nil {
		return result.FailureOf[[]*domain.Tag](result.InternalFrom(err))
	}

	tags, err := s.releaseRepo.FindTags(ctx, releaseID)
	if err != nil {
		return result.FailureOf[[]*domain.Tag](result.InternalFrom(err))
	}
	return result.SuccessOf(tags)
}

// Tags returns the release's current tag set.
func (s *ReleaseService) Tags(ctx context.Context, releaseID string) result.Of[[]*domain.Tag] {
	tags, err := s.releaseRepo.FindTags(ctx, releaseID)
	if err != nil {
		return result.FailureOf[[]*domain.Tag](result.InternalFrom(err))
	}
	return result.SuccessOf(tags)
}

// validateRelease aggregates all field violations into one validation
// error. Referential checks (artist, release type) count as validation:
// a bad reference in the request body is the caller's fault.
func (s *ReleaseService) validateRelease(ctx context.Context, release *domain.Release) result.Result {
	var details []string

	if release.Title == "" {
		details = append(details, "Title is required")
	}

	if release.ArtistID == "" {
		details = append(details, "ArtistId is required")
	} else {
		_, err := s.artistRepo.FindByID(ctx, release.ArtistID)
		if errors.Is(err, repository.ErrNotFound) {
			details = append(details, "ArtistId is invalid")
		} else if err != nil {
			return result.Failure(result.InternalFrom(err))
		}
	}

	if release.ReleaseTypeSlug == "" {
		details = append(details, "ReleaseTypeSlug is required")
	} else {
		_, err := s.typeRepo.FindBySlug(ctx, release.ReleaseTypeSlug)
		if errors.Is(err, repository.ErrNotFound) {
			details = append(details, "ReleaseTypeSlug is invalid")
		} else if err != nil {
			return result.Failure(result.InternalFrom(err))
		}
	}

	if len(details) > 0 {
		return result.Validation("release failed validation", details...).ToResult()
	}
	return result.Success()
}
