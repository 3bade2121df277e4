package handlers

import (
	"net/http"

	"breast-cancer-predictor/internal/adapters/primary/http/dto"
	"breast-cancer-predictor/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListVariants(c *gin.Context) {
	svcs := h.catalog.List()
	items := make([]dto.VariantResponse, 0, len(svcs))
	for _, svc := range svcs {
		items = append(items, dto.ToVariantResponse(svc))
	}

	c.JSON(http.StatusOK, dto.ListVariantsResponse{Items: items, Total: len(items)})
}

func (h *Handler) GetVariant(c *gin.Context) {
	svc, err := h.catalog.Get(c.Param("variant"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVariantResponse(svc))
}

func (h *Handler) Predict(c *gin.Context) {
	svc, err := h.catalog.Get(c.Param("variant"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vec, err := domain.CollectFeatureMap(svc.Variant(), req.Features)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	result, err := svc.Infer(c.Request.Context(), vec)
	if err != nil {
		log.WithError(err).WithField("variant", svc.Variant().Key).Warn("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(svc.Variant(), result))
}
