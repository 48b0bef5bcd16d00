package dto

import "time"

// CreateReleaseRequest represents the release creation request
type CreateReleaseRequest struct {
	ArtistID        string     `json:"artist_id" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	ReleaseTypeSlug string     `json:"release_type_slug" binding:"required"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
	Label           *string    `json:"label,omitempty"`
	CatalogNumber   *string    `json:"catalog_number,omitempty"`
}

// UpdateReleaseRequest represents the release update request
type UpdateReleaseRequest struct {
	ArtistID        *string    `json:"artist_id,omitempty"`
	Title           *string    `json:"title,omitempty"`
	ReleaseTypeSlug *string    `json:"release_type_slug,omitempty"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
	Label           *string    `json:"label,omitempty"`
	CatalogNumber   *string    `json:"catalog_number,omitempty"`
}

// SetReleaseTagsRequest replaces a release's tag set
type SetReleaseTagsRequest struct {
	Tags []string `json:"tags" binding:"required"`
}

// ReleaseResponse represents a release
type ReleaseResponse struct {
	ID              string        `json:"id"`
	ArtistID        string        `json:"artist_id"`
	Title           string        `json:"title"`
	ReleaseTypeSlug string        `json:"release_type_slug"`
	ReleaseDate     *time.Time    `json:"release_date,omitempty"`
	Label           *string       `json:"label,omitempty"`
	CatalogNumber   *string       `json:"catalog_number,omitempty"`
	Tags            []TagResponse `json:"tags,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ReleaseListResponse represents a list of releases
type ReleaseListResponse struct {
	Items      []ReleaseResponse `json:"items"`
	Pagination PaginationInfo    `json:"pagination"`
}
