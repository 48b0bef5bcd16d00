package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
	"github.com/annelie/wax/pkg/result"
)

var tagSlugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type TagService struct {
	tagRepo     repository.TagRepository
	releaseRepo repository.ReleaseRepository
}

func NewTagService(tagRepo repository.TagRepository, releaseRepo repository.ReleaseRepository) *TagService {
	return &TagService{
		tagRepo:     tagRepo,
		releaseRepo: releaseRepo,
	}
}

// CreateTag validates and persists a new tag.
func (s *TagService) CreateTag(ctx context.Context, tag *domain.Tag) result.Of[*domain.Tag] {
	var details []string
	if tag.Name == "" {
		details = append(details, "Name is required")
	}
	if !tagSlugRe.MatchString(tag.Slug) {
		details = append(details, "Slug must be lowercase letters, digits and hyphens")
	} else {
		_, err := s.tagRepo.FindBySlug(ctx, tag.Slug)
		if err == nil {
			details = append(details, "Slug is already taken")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return result.FailureOf[*domain.Tag](result.InternalFrom(err))
		}
	}
	if len(details) > 0 {
		return result.ToResultOf[*domain.Tag](result.Validation("tag failed validation", details...))
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return result.FailureOf[*domain.Tag](result.InternalFrom(err))
	}
	return result.SuccessOf(tag)
}

// GetTag retrieves a tag by slug.
func (s *TagService) GetTag(ctx context.Context, slug string) result.Of[*domain.Tag] {
	tag, err := s.tagRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Tag](result.NotFound(fmt.Sprintf("tag not found: %s", slug)))
	}
	if err != nil {
		return result.FailureOf[*domain.Tag](result.InternalFrom(err))
	}
	return result.SuccessOf(tag)
}

// ListTags returns all tags ordered by slug.
func (s *TagService) ListTags(ctx context.Context) result.Of[[]*domain.Tag] {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return result.FailureOf[[]*domain.Tag](result.InternalFrom(err))
	}
	return result.SuccessOf(tags)
}

// UpdateTag renames an existing tag. The slug is immutable.
func (s *TagService) UpdateTag(ctx context.Context, tag *domain.Tag) result.Of[*domain.Tag] {
	if tag.Name == "" {
		return result.ToResultOf[*domain.Tag](result.Validation("tag failed validation", "Name is required"))
	}

	tag.UpdatedAt = time.Now().UTC()
	err := s.tagRepo.Update(ctx, tag)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.Tag](result.NotFound(fmt.Sprintf("tag not found: %s", tag.Slug)))
	}
	if err != nil {
		return result.FailureOf[*domain.Tag](result.InternalFrom(err))
	}
	return result.SuccessOf(tag)
}

// DeleteTag removes a tag. Tags still attached to live releases are refused.
func (s *TagService) DeleteTag(ctx context.Context, slug string) result.Result {
	count, err := s.releaseRepo.CountByTag(ctx, slug)
	if err != nil {
		return result.Failure(result.InternalFrom(err))
	}
	if count > 0 {
		return result.Validation(
			"tag cannot be deleted",
			fmt.Sprintf("Tag is attached to %d release(s)", count),
		).ToResult()
	}

	err = s.tagRepo.Delete(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return result.Failure(result.NoContent(fmt.Sprintf("tag not found: %s", slug)))
	}
	if err != nil {
		return result.Failure(result.InternalFrom(err))
	}
	return result.Success()
}
