package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
)

type trackRepository struct {
	db *DB
}

func NewTrackRepository(db *DB) repository.TrackRepository {
	return &trackRepository{db: db}
}

func (r *trackRepository) Create(ctx context.Context, track *domain.Track) error {
	query := `
		INSERT INTO track (id, release_id, position, title, duration_seconds, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		track.ID,
		track.ReleaseID,
		track.Position,
		track.Title,
		NullInt(track.DurationSeconds),
		track.CreatedAt,
		track.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create track: %w", err)
	}
	return nil
}

func (r *trackRepository) FindByID(ctx context.Context, id string) (*domain.Track, error) {
	query := `
		SELECT id, release_id, position, title, duration_seconds, created_at, updated_at
		FROM track
		WHERE id = ?
	`
	var track domain.Track
	err := r.db.GetContext(ctx, &track, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find track: %w", err)
	}
	return &track, nil
}

func (r *trackRepository) Update(ctx context.Context, track *domain.Track) error {
	query := `
		UPDATE track
		SET position = ?, title = ?, duration_seconds = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		track.Position,
		track.Title,
		NullInt(track.DurationSeconds),
		track.UpdatedAt,
		track.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
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

func (r *trackRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM track WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
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

func (r *trackRepository) ListByRelease(ctx context.Context, releaseID string) ([]*domain.Track, error) {
	query := `
		SELECT id, release_id, position, title, duration_seconds, created_at, updated_at
		FROM track
		WHERE release_id = ?
		ORDER BY position ASC
	`
	var tracks []*domain.Track
	if err := r.db.SelectContext(ctx, &tracks, query, releaseID); err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return tracks, nil
}

func (r *trackRepository) FindByPosition(ctx context.Context, releaseID string, position int) (*domain.Track, error) {
	query := `
		SELECT id, release_id, position, title, duration_seconds, created_at, updated_at
		FROM track
		WHERE release_id = ? AND position = ?
	`
	var track domain.Track
	err := r.db.GetContext(ctx, &track, query, releaseID, position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find track by position: %w", err)
	}
	return &track, nil
}
