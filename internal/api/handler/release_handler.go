package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/dto"
	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
	"github.com/annelie/wax/internal/core/service"
)

// Allowed fields for release queries and ordering
var (
	releaseQueryFields = []string{"id", "artist_id", "title", "release_type_slug", "release_date", "label", "created_at"}
	releaseOrderFields = []string{"title", "release_date", "created_at"}
)

type ReleaseHandler struct {
	releaseService *service.ReleaseService
}

func NewReleaseHandler(releaseService *service.ReleaseService) *ReleaseHandler {
	return &ReleaseHandler{releaseService: releaseService}
}

// CreateRelease handles POST /releases
func (h *ReleaseHandler) CreateRelease(c *gin.Context) {
	var req dto.CreateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	release := domain.NewRelease(req.ArtistID, req.Title, req.ReleaseTypeSlug)
	release.ReleaseDate = req.ReleaseDate
	release.Label = req.Label
	release.CatalogNumber = req.CatalogNumber

	res := h.releaseService.CreateRelease(c.Request.Context(), release)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusCreated, toReleaseResponse(res.Value(), nil))
}

// GetRelease handles GET /releases/:id
func (h *ReleaseHandler) GetRelease(c *gin.Context) {
	id := c.Param("id")

	res := h.releaseService.GetRelease(c.Request.Context(), id)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	tagsRes := h.releaseService.Tags(c.Request.Context(), id)
	if tagsRes.IsFailure() {
		respondProblem(c, tagsRes.Err())
		return
	}

	c.JSON(http.StatusOK, toReleaseResponse(res.Value(), tagsRes.Value()))
}

// ListReleases handles GET /releases
func (h *ReleaseHandler) ListReleases(c *gin.Context) {
	listFilter, perr := parseListFilter(c, releaseQueryFields, releaseOrderFields)
	if perr != nil {
		respondProblem(c, perr)
		return
	}

	filter := repository.ReleaseFilter{ListFilter: listFilter}

	res := h.releaseService.ListReleases(c.Request.Context(), filter)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	countRes := h.releaseService.CountReleases(c.Request.Context(), filter)
	if countRes.IsFailure() {
		respondProblem(c, countRes.Err())
		return
	}

	releases := res.Value()
	response := dto.ReleaseListResponse{
		Items:      make([]dto.ReleaseResponse, len(releases)),
		Pagination: dto.NewPaginationInfo(countRes.Value(), listFilter.Page, listFilter.PerPage),
	}
	for i, release := range releases {
		response.Items[i] = toReleaseResponse(release, nil)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateRelease handles PUT /releases/:id
func (h *ReleaseHandler) UpdateRelease(c *gin.Context) {
	var req dto.UpdateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	getRes := h.releaseService.GetRelease(c.Request.Context(), c.Param("id"))
	if getRes.IsFailure() {
		respondProblem(c, getRes.Err())
		return
	}

	release := getRes.Value()
	if req.ArtistID != nil {
		release.ArtistID = *req.ArtistID
	}
	if req.Title != nil {
		release.Title = *req.Title
	}
	if req.ReleaseTypeSlug != nil {
		release.ReleaseTypeSlug = *req.ReleaseTypeSlug
	}
	if req.ReleaseDate != nil {
		release.ReleaseDate = req.ReleaseDate
	}
	if req.Label != nil {
		release.Label = req.Label
	}
	if req.CatalogNumber != nil {
		release.CatalogNumber = req.CatalogNumber
	}

	res := h.releaseService.UpdateRelease(c.Request.Context(), release)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, toReleaseResponse(res.Value(), nil))
}

// DeleteRelease handles DELETE /releases/:id
func (h *ReleaseHandler) DeleteRelease(c *gin.Context) {
	res := h.releaseService.DeleteRelease(c.Request.Context(), c.Param("id"))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// SetReleaseTags handles PUT /releases/:id/tags
func (h *ReleaseHandler) SetReleaseTags(c *gin.Context) {
	var req dto.SetReleaseTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res := h.releaseService.SetTags(c.Request.Context(), c.Param("id"), req.Tags)
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

func toReleaseResponse(release *domain.Release, tags []*domain.Tag) dto.ReleaseResponse {
	resp := dto.ReleaseResponse{
		ID:              release.ID,
		ArtistID:        release.ArtistID,
		Title:           release.Title,
		ReleaseTypeSlug: release.ReleaseTypeSlug,
		ReleaseDate:     release.ReleaseDate,
		Label:           release.Label,
		CatalogNumber:   release.CatalogNumber,
		CreatedAt:       release.CreatedAt,
		UpdatedAt:       release.UpdatedAt,
	}
	if tags != nil {
		resp.Tags = make([]dto.TagResponse, len(tags))
		for i, tag := range tags {
			resp.Tags[i] = toTagResponse(tag)
		}
	}
	return resp
}
