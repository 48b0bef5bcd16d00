package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
)

type releaseTypeRepository struct {
	db *DB
}

func NewReleaseTypeRepository(db *DB) repository.ReleaseTypeRepository {
	return &releaseTypeRepository{db: db}
}

func (r *releaseTypeRepository) FindBySlug(ctx context.Context, slug string) (*domain.ReleaseType, error) {
	var rt domain.ReleaseType
	err := r.db.GetContext(ctx, &rt, `SELECT slug, name FROM release_type WHERE slug = ?`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find release type: %w", err)
	}
	return &rt, nil
}

func (r *releaseTypeRepository) List(ctx context.Context) ([]*domain.ReleaseType, error) {
	var types []*domain.ReleaseType
	if err := r.db.SelectContext(ctx, &types, `SELECT slug, name FROM release_type ORDER BY slug`); err != nil {
		return nil, fmt.Errorf("failed to list release types: %w", err)
	}
	return types, nil
}
