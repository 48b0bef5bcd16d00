package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/dto"
	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
)

type TrackHandler struct {
	trackService *service.TrackService
}

func NewTrackHandler(trackService *service.TrackService) *TrackHandler {
	return &TrackHandler{trackService: trackService}
}

// AddTrack handles POST /releases/:id/tracks
func (h *TrackHandler) AddTrack(c *gin.Context) {
	var req dto.CreateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	track := domain.NewTrack(c.Param("id"), req.Position, req.Title)
	track.DurationSeconds = req.DurationSeconds

	res := h.trackService.AddTrack(c.Request.Context(), track)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusCreated, toTrackResponse(res.Value()))
}

// ListTracks handles GET /releases/:id/tracks
func (h *TrackHandler) ListTracks(c *gin.Context) {
	res := h.trackService.ListTracks(c.Request.Context(), c.Param("id"))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	tracks := res.Value()
	response := dto.TrackListResponse{Items: make([]dto.TrackResponse, len(tracks))}
	for i, track := range tracks {
		response.Items[i] = toTrackResponse(track)
	}

	c.JSON(http.StatusOK, response)
}

// UpdateTrack handles PUT /tracks/:id
func (h *TrackHandler) UpdateTrack(c *gin.Context) {
	var req dto.UpdateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	getRes := h.trackService.GetTrack(c.Request.Context(), c.Param("id"))
	if getRes.IsFailure() {
		respondProblem(c, getRes.Err())
		return
	}

	track := getRes.Value()
	if req.Position != nil {
		track.Position = *req.Position
	}
	if req.Title != nil {
		track.Title = *req.Title
	}
	if req.DurationSeconds != nil {
		track.DurationSeconds = req.DurationSeconds
	}

	res := h.trackService.UpdateTrack(c.Request.Context(), track)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, toTrackResponse(res.Value()))
}

// DeleteTrack handles DELETE /tracks/:id
func (h *TrackHandler) DeleteTrack(c *gin.Context) {
	res := h.trackService.DeleteTrack(c.Request.Context(), c.Param("id"))
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func toTrackResponse(track *domain.Track) dto.TrackResponse {
	return dto.TrackResponse{
		ID:              track.ID,
		ReleaseID:       track.ReleaseID,
		Position:        track.Position,
		Title:           track.Title,
		DurationSeconds: track.DurationSeconds,
		CreatedAt:       track.CreatedAt,
		UpdatedAt:       track.UpdatedAt,
	}
}
