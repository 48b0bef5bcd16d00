package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
	"github.com/annelie/wax/pkg/result"
)

const (
	AuthHeaderKey  = "Authorization"
	AuthContextKey = "auth"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortProblem(c, result.Forbidden("Missing authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortProblem(c, result.Forbidden("Invalid authorization header format. Expected 'Bearer <token>'"))
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			abortProblem(c, result.Forbidden("Invalid or expired token"))
			return
		}

		c.Set(AuthContextKey, claims)

		c.Next()
	}
}

// RequireRole aborts the request unless the authenticated user has the
// given role. Must run after AuthMiddleware.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok || claims.Role != string(role) {
			abortProblem(c, result.Forbidden("Insufficient role for this operation"))
			return
		}

		c.Next()
	}
}

// GetAuthClaims retrieves auth claims from context
func GetAuthClaims(c *gin.Context) (*service.TokenClaims, bool) {
	claims, exists := c.Get(AuthContextKey)
	if !exists {
		return nil, false
	}

	tokenClaims, ok := claims.(*service.TokenClaims)
	return tokenClaims, ok
}

func abortProblem(c *gin.Context, e *result.Error) {
	c.AbortWithStatusJSON(e.Status, e.ToProblem())
}
