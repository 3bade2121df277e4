package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz always answers 200: a variant whose model failed to load degrades
// the service but does not take it down.
func (h *Handler) Healthz(c *gin.Context) {
	variants := make(map[string]string)
	for _, svc := range h.catalog.List() {
		variants[svc.Variant().Key] = string(svc.State())
	}

	status := "ok"
	if !h.catalog.Ready() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "variants": variants})
}
