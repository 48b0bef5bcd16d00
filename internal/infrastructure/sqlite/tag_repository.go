package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
)

type tagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	query := `
		INSERT INTO tag (slug, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, tag.Slug, tag.Name, tag.CreatedAt, tag.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

func (r *tagRepository) FindBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	query := `
		SELECT slug, name, created_at, updated_at
		FROM tag
		WHERE slug = ?
	`
	var tag domain.Tag
	err := r.db.GetContext(ctx, &tag, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	return &tag, nil
}

func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	query := `
		UPDATE tag
		SET name = ?, updated_at = ?
		WHERE slug = ?
	`
	result, err := r.db.ExecContext(ctx, query, tag.Name, tag.UpdatedAt, tag.Slug)
	if err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
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

func (r *tagRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tag WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
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

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	query := `
		SELECT slug, name, created_at, updated_at
		FROM tag
		ORDER BY slug
	`
	var tags []*domain.Tag
	if err := r.db.SelectContext(ctx, &tags, query); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}
