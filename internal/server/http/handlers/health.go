package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/L1nkStart/authsvc/internal/server/http/dto"
)

// HealthHandler reports service and storage liveness.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.pinger.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.Err("storage unavailable"))
		return
	}
	c.JSON(http.StatusOK, dto.OK("server is running", gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}))
}
