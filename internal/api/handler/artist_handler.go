package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/dto"
	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
	"github.com/annelie/wax/internal/core/service"
)

// Allowed fields for artist queries and ordering
var (
	artistQueryFields = []string{"id", "name", "country", "created_at"}
	artistOrderFields = []string{"name", "country", "created_at"}
)

type ArtistHandler struct {
	artistService *service.ArtistService
}

func NewArtistHandler(artistService *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// CreateArtist handles POST /artists
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	artist := domain.NewArtist(req.Name)
	artist.Country = req.Country
	artist.Bio = req.Bio

	res := h.artistService.CreateArtist(c.Request.Context(), artist)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusCreated, toArtistResponse(res.Value()))
}

// GetArtist handles GET /artists/:id
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	res := h.artistService.GetArtist(c.Request.Context(), c.Param("id"))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, toArtistResponse(res.Value()))
}

// ListArtists handles GET /artists
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	listFilter, perr := parseListFilter(c, artistQueryFields, artistOrderFields)
	if perr != nil {
		respondProblem(c, perr)
		return
	}

	filter := repository.ArtistFilter{ListFilter: listFilter}

	res := h.artistService.ListArtists(c.Request.Context(), filter)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	countRes := h.artistService.CountArtists(c.Request.Context(), filter)
	if countRes.IsFailure() {
		respondProblem(c, countRes.Err())
		return
	}

	artists := res.Value()
	response := dto.ArtistListResponse{
		Items:      make([]dto.ArtistResponse, len(artists)),
		Pagination: dto.NewPaginationInfo(countRes.Value(), listFilter.Page, listFilter.PerPage),
	}
	for i, artist := range artists {
		response.Items[i] = toArtistResponse(artist)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateArtist handles PUT /artists/:id
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	var req dto.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	getRes := h.artistService.GetArtist(c.Request.Context(), c.Param("id"))
	if getRes.IsFailure() {
		respondProblem(c, getRes.Err())
		return
	}

	artist := getRes.Value()
	if req.Name != nil {
		artist.Name = *req.Name
	}
	if req.Country != nil {
		artist.Country = req.Country
	}
	if req.Bio != nil {
		artist.Bio = req.Bio
	}

	res := h.artistService.UpdateArtist(c.Request.Context(), artist)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, toArtistResponse(res.Value()))
}

// DeleteArtist handles DELETE /artists/:id
func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	res := h.artistService.DeleteArtist(c.Request.Context(), c.Param("id"))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toArtistResponse(artist *domain.Artist) dto.ArtistResponse {
	return dto.ArtistResponse{
		ID:        artist.ID,
		Name:      artist.Name,
		Country:   artist.Country,
		Bio:       artist.Bio,
		CreatedAt: artist.CreatedAt,
		UpdatedAt: artist.UpdatedAt,
	}
}
