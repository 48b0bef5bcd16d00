package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
)

type artistRepository struct {
	db *DB
}

func NewArtistRepository(db *DB) repository.ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	query := `
		INSERT INTO artist (id, name, country, bio, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		artist.ID,
		artist.Name,
		NullString(artist.Country),
		NullString(artist.Bio),
		artist.CreatedAt,
		artist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

func (r *artistRepository) FindByID(ctx context.Context, id string) (*domain.Artist, error) {
	query := `
		SELECT id, name, country, bio, created_at, updated_at
		FROM artist
		WHERE id = ?
	`
	var artist domain.Artist
	err := r.db.GetContext(ctx, &artist, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find artist: %w", err)
	}
	return &artist, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	query := `
		UPDATE artist
		SET name = ?, country = ?, bio = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		artist.Name,
		NullString(artist.Country),
		NullString(artist.Bio),
		artist.UpdatedAt,
		artist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
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

func (r *artistRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artist WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
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

func (r *artistRepository) List(ctx context.Context, filter repository.ArtistFilter) ([]*domain.Artist, error) {
	query := `
		SELECT id, name, country, bio, created_at, updated_at
		FROM artist
		WHERE 1=1
	`
	args := []interface{}{}
	query, args = ApplyFilters(query, args, filter.Filters)
	query = ApplyOrdering(query, filter.Order, "name ASC")
	query, args = ApplyPagination(query, args, filter.Page, filter.PerPage)

	var artists []*domain.Artist
	if err := r.db.SelectContext(ctx, &artists, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) Count(ctx context.Context, filter repository.ArtistFilter) (int, error) {
	query := `SELECT COUNT(*) FROM artist WHERE 1=1`
	args := []interface{}{}
	query, args = ApplyFilters(query, args, filter.Filters)

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}
	return count, nil
}
