package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifierEndpoint string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classifierEndpoint string) *HealthHandler {
	return &HealthHandler{
		classifierEndpoint: classifierEndpoint,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health.
// The classifier is an external service with no health endpoint of its own,
// so only its configuration is reported.
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	status := "healthy"
	httpStatus := http.StatusOK

	if h.classifierEndpoint != "" {
		components["classifier"] = h.classifierEndpoint
	} else {
		components["classifier"] = "not configured"
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.classifierEndpoint == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "classifier not configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
