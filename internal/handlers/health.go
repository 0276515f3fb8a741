package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	log   *logger.Logger
}

func NewHealthHandler(store Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log.With("handler", "HealthHandler")}
}

// GET /api/health
func (hh *HealthHandler) Health(c *gin.Context) {
	if err := hh.store.Ping(c.Request.Context()); err != nil {
		hh.log.Error("Health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Server is running",
			"dbState": "Disconnected",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Server is running",
		"dbState": "Connected",
	})
}
