package dto

import "time"

// CreateTrackRequest represents the track creation request
type CreateTrackRequest struct {
	Position        int    `json:"position" binding:"required,min=1"`
	Title           string `json:"title" binding:"required"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
}

// UpdateTrackRequest represents the track update request
type UpdateTrackRequest struct {
	Position        *int    `json:"position,omitempty"`
	Title           *string `json:"title,omitempty"`
	DurationSeconds *int    `json:"duration_seconds,omitempty"`
}

// TrackResponse represents a track
type TrackResponse struct {
	ID              string    `json:"id"`
	ReleaseID       string    `json:"release_id"`
	Position        int       `json:"position"`
	Title           string    `json:"title"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TrackListResponse represents a release's track list
type TrackListResponse struct {
	Items []TrackResponse `json:"items"`
}
