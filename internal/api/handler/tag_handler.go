package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/dto"
	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTag handles POST /tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res := h.tagService.CreateTag(c.Request.Context(), domain.NewTag(req.Slug, req.Name))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusCreated, toTagResponse(res.Value()))
}

// GetTag handles GET /tags/:slug
func (h *TagHandler) GetTag(c *gin.Context) {
	res := h.tagService.GetTag(c.Request.Context(), c.Param("slug"))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, toTagResponse(res.Value()))
}

// ListTags handles GET /tags
func (h *TagHandler) ListTags(c *gin.Context) {
	res := h.tagService.ListTags(c.Request.Context())
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	tags := res.Value()
	response := dto.TagListResponse{Items: make([]dto.TagResponse, len(tags))}
	for i, tag := range tags {
		response.Items[i] = toTagResponse(tag)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateTag handles PUT /tags/:slug
func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	getRes := h.tagService.GetTag(c.Request.Context(), c.Param("slug"))
	if getRes.IsFailure() {
		respondProblem(c, getRes.Err())
		return
	}

	tag := getRes.Value()
	tag.Name = req.Name

	res := h.tagService.UpdateTag(c.Request.Context(), tag)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, toTagResponse(res.Value()))
}

// DeleteTag handles DELETE /tags/:slug
func (h *TagHandler) DeleteTag(c *gin.Context) {
	res := h.tagService.DeleteTag(c.Request.Context(), c.Param("slug"))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toTagResponse(tag *domain.Tag) dto.TagResponse {
	return dto.TagResponse{
		Slug:      tag.Slug,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
