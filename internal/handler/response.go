package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "timers/internal/errors"
)

// writeError renders the {"error":{"code","message"}} envelope. A nil error
// is reported as a 500.
func writeError(c *gin.Context, apiErr *apperrors.APIError) {
	if apiErr == nil {
		apiErr = apperrors.Internal("")
	}
	c.JSON(apiErr.Status, gin.H{"error": apiErr})
}

func writeInvalidJSON(c *gin.Context) {
	writeError(c, apperrors.BadRequest(apperrors.CodeInvalidJSON, "invalid request body"))
}
