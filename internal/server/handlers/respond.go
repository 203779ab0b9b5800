package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/domain/validate"
)

// respondData writes the success envelope every endpoint shares.
func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

// respondError writes the error envelope with a single message.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// fail maps a service error onto the wire: validation failures become a 400
// listing every violated constraint, anything else a generic 500. Backend
// details are logged, never leaked.
func fail(c *gin.Context, logger *zap.Logger, err error) {
	if verr, ok := validate.AsError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": verr.Error(),
			"errors":  verr.Violations,
		})
		return
	}

	logger.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	respondError(c, http.StatusInternalServerError, "internal server error")
}
