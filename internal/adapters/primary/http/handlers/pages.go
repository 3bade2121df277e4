package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"breast-cancer-predictor/internal/adapters/primary/http/views"
	"breast-cancer-predictor/internal/core/domain"
	"breast-cancer-predictor/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const warnModelNotLoaded = "Model not loaded, prediction unavailable."

func (h *Handler) Index(c *gin.Context) {
	svcs := h.catalog.List()
	links := make([]views.VariantLink, 0, len(svcs))
	for _, svc := range svcs {
		v := svc.Variant()
		links = append(links, views.VariantLink{
			Key:         v.Key,
			Title:       v.Title,
			NumFeatures: v.NumFeatures(),
			Ready:       svc.IsReady(),
		})
	}

	c.HTML(http.StatusOK, views.IndexPage, views.IndexData{Variants: links})
}

func (h *Handler) ShowForm(c *gin.Context) {
	svc, err := h.catalog.Get(c.Param("variant"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}

	c.HTML(http.StatusOK, views.FormPage, formData(svc, views.FieldsFromVector(svc.Variant(), nil)))
}

// SubmitForm handles the predict button. Without a loaded model it renders a
// warning and never assembles or scores a vector.
func (h *Handler) SubmitForm(c *gin.Context) {
	svc, err := h.catalog.Get(c.Param("variant"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	v := svc.Variant()

	if !svc.IsReady() {
		data := formData(svc, views.FieldsFromLookup(v, c.GetPostForm))
		data.Warning = warnModelNotLoaded
		c.HTML(http.StatusServiceUnavailable, views.FormPage, data)
		return
	}

	vec, err := domain.CollectFeatures(v, c.GetPostForm)
	if err != nil {
		data := formData(svc, views.FieldsFromLookup(v, c.GetPostForm))
		data.InputError = err.Error()
		c.HTML(http.StatusBadRequest, views.FormPage, data)
		return
	}

	data := formData(svc, views.FieldsFromVector(v, vec))
	result, err := svc.Infer(c.Request.Context(), vec)
	switch {
	case errors.Is(err, domain.ErrModelNotLoaded):
		data.Warning = warnModelNotLoaded
		c.HTML(http.StatusServiceUnavailable, views.FormPage, data)
	case err != nil:
		log.WithError(err).WithField("variant", v.Key).Error("form prediction failed")
		data.Warning = "Prediction failed, check the server logs."
		c.HTML(http.StatusInternalServerError, views.FormPage, data)
	default:
		data.Result = result
		c.HTML(http.StatusOK, views.FormPage, data)
	}
}

func formData(svc *services.PredictionService, fields []views.Field) views.FormData {
	v := svc.Variant()
	return views.FormData{
		Title:      v.Title,
		VariantKey: v.Key,
		Fields:     fields,
		LoadError:  loadErrorMessage(svc),
	}
}

func loadErrorMessage(svc *services.PredictionService) string {
	err := svc.LoadError()
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrModelFileNotFound):
		return fmt.Sprintf("Model file not found. Make sure '%s' is in the same directory.", svc.Variant().ModelPath)
	default:
		return "Model failed to load: " + err.Error()
	}
}
