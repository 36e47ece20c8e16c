package handlers

import (
	"net/http"

	"contractor_pro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness and readiness probes.

type HealthHandler struct {
	store interfaces.IDataStore
}

func NewHealthHandler(store interfaces.IDataStore) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health reports 503 until the data store has loaded.
func (h *HealthHandler) Health(c *gin.Context) {
	if !h.store.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading", "ready": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ready": true})
}
