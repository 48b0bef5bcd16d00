package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/dto"
	"github.com/annelie/wax/internal/core/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token handles POST /auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res := h.authService.Token(c.Request.Context(), req.Username, req.Password)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: res.Value(),
		TokenType:   "bearer",
		ExpiresIn:   service.TokenExpirationHours * 3600,
	})
}
