package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/pkg/result"
)

// respondProblem renders a failed operation. The status code always comes
// from the error variant itself; handlers never pick their own.
func respondProblem(c *gin.Context, e *result.Error) {
	c.JSON(e.Status, e.ToProblem())
}

// respondBindError renders a JSON binding failure as a validation problem.
func respondBindError(c *gin.Context, err error) {
	respondProblem(c, result.Validation("Invalid request body", err.Error()))
}
