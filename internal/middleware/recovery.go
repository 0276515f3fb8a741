package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
)

// Recovery converts any panic during request handling into a logged
// generic 500 so one bad request cannot take the process down.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("Panic recovered",
			"error", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			RequestIDKey, c.GetString(RequestIDKey),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	})
}
