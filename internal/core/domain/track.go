package domain

import (
	"time"

	"github.com/google/uuid"
)

type Track struct {
	ID              string    `db:"id"`
	ReleaseID       string    `db:"release_id"`
	Position        int       `db:"position"` // 1-based, unique per release
	Title           string    `db:"title"`
	DurationSeconds *int      `db:"duration_seconds"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func NewTrack(releaseID string, position int, title string) *Track {
	now := time.Now().UTC()
	return &Track{
		ID:        uuid.NewString(),
		ReleaseID: releaseID,
		Position:  position,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
