package domain

import (
	"time"

	"github.com/google/uuid"
)

type Artist struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Country   *string   `db:"country"` // ISO 3166-1 alpha-2
	Bio       *string   `db:"bio"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewArtist(name string) *Artist {
	now := time.Now().UTC()
	return &Artist{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
