package dto

import (
	"breast-cancer-predictor/internal/core/domain"
	"breast-cancer-predictor/internal/core/services"
)

// ============================================================================
// Variant DTOs
// ============================================================================

type VariantResponse struct {
	Key            string           `json:"key"`
	Title          string           `json:"title"`
	Features       []domain.Feature `json:"features"`
	ModelPath      string           `json:"model_path"`
	ExpectsColumns bool             `json:"expects_columns"`
	State          string           `json:"state"`
	LoadError      string           `json:"load_error,omitempty"`
	ModelType      string           `json:"model_type,omitempty"`
	Columns        []string         `json:"columns,omitempty"`
}

type ListVariantsResponse struct {
	Items []VariantResponse `json:"items"`
	Total int               `json:"total"`
}

func ToVariantResponse(svc *services.PredictionService) VariantResponse {
	v := svc.Variant()
	resp := VariantResponse{
		Key:            v.Key,
		Title:          v.Title,
		Features:       v.Features,
		ModelPath:      v.ModelPath,
		ExpectsColumns: v.ExpectsColumns,
		State:          string(svc.State()),
	}
	if err := svc.LoadError(); err != nil {
		resp.LoadError = err.Error()
	}
	if b := svc.Bundle(); b != nil {
		resp.ModelType = b.ModelType
		resp.Columns = b.Columns
	}
	return resp
}
