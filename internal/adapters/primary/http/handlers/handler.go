package handlers

import (
	"breast-cancer-predictor/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *services.Catalog
}

func New(catalog *services.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterPages mounts the server-rendered form pages.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/variants/:variant", h.ShowForm)
	r.POST("/variants/:variant/predict", h.SubmitForm)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Variants
	r.GET("/variants", h.ListVariants)
	r.GET("/variants/:variant", h.GetVariant)

	// Inference
	r.POST("/variants/:variant/predict", h.Predict)
}
