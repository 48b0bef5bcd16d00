package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/pkg/result"
)

// RecoveryMiddleware turns panics and unhandled gin errors into a 500
// problem response. Handlers render their own failures; anything that
// reaches this middleware is a bug, not a domain outcome.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				abortProblem(c, result.Internal("An unexpected error occurred"))
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			abortProblem(c, result.InternalFrom(c.Errors.Last()))
		}
	}
}
