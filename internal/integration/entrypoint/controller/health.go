// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports the liveness of the API and its dependencies.
// The database is required; the cache is optional and its absence only
// degrades the status, it never fails the check.
type HealthController struct {
	checkDatabase func() bool
	checkCache    func() bool
}

// HealthResponse describes the state of each dependency.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a health controller. checkCache may be nil
// when the service runs without a cache.
func NewHealthController(checkDatabase, checkCache func() bool) *HealthController {
	return &HealthController{
		checkDatabase: checkDatabase,
		checkCache:    checkCache,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.checkDatabase != nil && h.checkDatabase() {
		dbStatus = "connected"
	}

	cacheStatus := "unavailable"
	if h.checkCache != nil && h.checkCache() {
		cacheStatus = "connected"
	}

	status := "ok"
	if dbStatus != "connected" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Cache:     cacheStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
