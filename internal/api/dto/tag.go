package dto

import "time"

// CreateTagRequest represents the tag creation request
type CreateTagRequest struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// UpdateTagRequest represents the tag update request
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// TagResponse represents a tag
type TagResponse struct {
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagListResponse represents the full tag list
type TagListResponse struct {
	Items []TagResponse `json:"items"`
}
