package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-server/usecases"
)

// respondError maps use case errors onto the wire taxonomy: 404 for missed
// lookups, 401 for credential failures, 400 for everything the caller can
// fix.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
