package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/dto"
	"github.com/annelie/wax/internal/api/middleware"
	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
	"github.com/annelie/wax/pkg/result"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignUp handles POST /users
func (h *UserHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res := h.userService.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(res.Value()))
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetAuthClaims(c)
	if !ok {
		respondProblem(c, result.Forbidden("Missing authentication"))
		return
	}

	res := h.userService.GetUser(c.Request.Context(), claims.Subject)
	if res.IsFailure() {
		respondProblem(c, res.Err())
		return
	}

	c.JSON(http.StatusOK, toUserResponse(res.Value()))
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
