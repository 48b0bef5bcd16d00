package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
)

type releaseRepository struct {
	db *DB
}

func NewReleaseRepository(db *DB) repository.ReleaseRepository {
	return &releaseRepository{db: db}
}

func (r *releaseRepository) Create(ctx context.Context, release *domain.Release) error {
	query := `
		INSERT INTO release (id, artist_id, title, release_type_slug, release_date,
			label, catalog_number, deleted_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		release.ID,
		release.ArtistID,
		release.Title,
		release.ReleaseTypeSlug,
		NullTime(release.ReleaseDate),
		NullString(release.Label),
		NullString(release.CatalogNumber),
		NullTime(release.DeletedAt),
		release.CreatedAt,
		release.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create release: %w", err)
	}
	return nil
}

func (r *releaseRepository) FindByID(ctx context.Context, id string) (*domain.Release, error) {
	query := `
		SELECT id, artist_id, title, release_type_slug, release_date,
			label, catalog_number, deleted_at, created_at, updated_at
		FROM release
		WHERE id = ?
	`
	var release domain.Release
	err := r.db.GetContext(ctx, &release, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find release: %w", err)
	}
	return &release, nil
}

func (r *releaseRepository) Update(ctx context.Context, release *domain.Release) error {
	query := `
		UPDATE release
		SET artist_id = ?, title = ?, release_type_slug = ?, release_date = ?,
			label = ?, catalog_number = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query,
		release.ArtistID,
		release.Title,
		release.ReleaseTypeSlug,
		NullTime(release.ReleaseDate),
		NullString(release.Label),
		NullString(release.CatalogNumber),
		release.UpdatedAt,
		release.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update release: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *releaseRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE release SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`
	result, err := r.db.ExecContext(ctx, query, at, at, id)
	if err != nil {
		return fmt.Errorf("failed to delete release: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *releaseRepository) List(ctx context.Context, filter repository.ReleaseFilter) ([]*domain.Release, error) {
	query := `
		SELECT id, artist_id, title, release_type_slug, release_date,
			label, catalog_number, deleted_at, created_at, updated_at
		FROM release
		WHERE deleted_at IS NULL
	`
	args := []interface{}{}
	query, args = ApplyFilters(query, args, filter.Filters)
	query = ApplyOrdering(query, filter.Order, "created_at DESC")
	query, args = ApplyPagination(query, args, filter.Page, filter.PerPage)

	var releases []*domain.Release
	if err := r.db.SelectContext(ctx, &releases, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	return releases, nil
}

func (r *releaseRepository) Count(ctx context.Context, filter repository.ReleaseFilter) (int, error) {
	query := `SELECT COUNT(*) FROM release WHERE deleted_at IS NULL`
	args := []interface{}{}
	query, args = ApplyFilters(query, args, filter.Filters)

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count releases: %w", err)
	}
	return count, nil
}

func (r *releaseRepository) CountByArtist(ctx context.Context, artistID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM release WHERE artist_id = ? AND deleted_at IS NULL`, artistID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count releases by artist: %w", err)
	}
	return count, nil
}

func (r *releaseRepository) CountByTag(ctx context.Context, tagSlug string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM release_tag rt
		JOIN release rel ON rel.id = rt.release_id
		WHERE rt.tag_slug = ? AND rel.deleted_at IS NULL
	`, tagSlug).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count releases by tag: %w", err)
	}
	return count, nil
}

func (r *releaseRepository) SetTags(ctx context.Context, releaseID string, tagSlugs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM release_tag WHERE release_id = ?`, releaseID); err != nil {
		return fmt.Errorf("failed to clear release tags: %w", err)
	}

	if len(tagSlugs) > 0 {
		values := make([]string, 0, len(tagSlugs))
		args := make([]interface{}, 0, len(tagSlugs)*2)
		for _, slug := range tagSlugs {
			values = append(values, "(?, ?)")
			args = append(args, releaseID, slug)
		}
		query := `INSERT INTO release_tag (release_id, tag_slug) VALUES ` + strings.Join(values, ", ")
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to set release tags: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit release tags: %w", err)
	}
	return nil
}

func (r *releaseRepository) FindTags(ctx context.Context, releaseID string) ([]*domain.Tag, error) {
	query := `
		SELECT t.slug, t.name, t.created_at, t.updated_at
		FROM tag t
		JOIN release_tag rt ON rt.tag_slug = t.slug
		WHERE rt.release_id = ?
		ORDER BY t.slug
	`
	var tags []*domain.Tag
	if err := r.db.SelectContext(ctx, &tags, query, releaseID); err != nil {
		return nil, fmt.Errorf("failed to find release tags: %w", err)
	}
	return tags, nil
}
