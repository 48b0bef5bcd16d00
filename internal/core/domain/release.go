package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReleaseType is a fixed vocabulary seeded at schema creation.
type ReleaseType struct {
	Slug string `db:"slug"`
	Name string `db:"name"`
}

type Release struct {
	ID              string     `db:"id"`
	ArtistID        string     `db:"artist_id"`
	Title           string     `db:"title"`
	ReleaseTypeSlug string     `db:"release_type_slug"`
	ReleaseDate     *time.Time `db:"release_date"`
	Label           *string    `db:"label"`
	CatalogNumber   *string    `db:"catalog_number"`
	DeletedAt       *time.Time `db:"deleted_at"` // soft delete marker
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func NewRelease(artistID, title, releaseTypeSlug string) *Release {
	now := time.Now().UTC()
	return &Release{
		ID:              uuid.NewString(),
		ArtistID:        artistID,
		Title:           title,
		ReleaseTypeSlug: releaseTypeSlug,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (r *Release) IsDeleted() bool {
	return r.DeletedAt != nil
}
