package dto

import "time"

// CreateArtistRequest represents the artist creation request
type CreateArtistRequest struct {
	Name    string  `json:"name" binding:"required"`
	Country *string `json:"country,omitempty"` // ISO 3166-1 alpha-2
	Bio     *string `json:"bio,omitempty"`
}

// UpdateArtistRequest represents the artist update request
type UpdateArtistRequest struct {
	Name    *string `json:"name,omitempty"`
	Country *string `json:"country,omitempty"`
	Bio     *string `json:"bio,omitempty"`
}

// ArtistResponse represents an artist
type ArtistResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   *string   `json:"country,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArtistListResponse represents a list of artists
type ArtistListResponse struct {
	Items      []ArtistResponse `json:"items"`
	Pagination PaginationInfo   `json:"pagination"`
}
