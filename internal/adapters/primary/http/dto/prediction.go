package dto

import (
	"breast-cancer-predictor/internal/core/domain"
)

// ============================================================================
// Prediction DTOs
// ============================================================================

// PredictRequest carries one sample. Missing features default to 0.
type PredictRequest struct {
	Features map[string]float64 `json:"features"`
}

type PredictionResponse struct {
	Variant   string             `json:"variant"`
	Label     int                `json:"label"`
	Diagnosis string             `json:"diagnosis"`
	Message   string             `json:"message"`
	Features  map[string]float64 `json:"features"`
}

func ToPredictionResponse(v *domain.Variant, r *domain.PredictionResult) PredictionResponse {
	return PredictionResponse{
		Variant:   r.Variant,
		Label:     r.Label,
		Diagnosis: string(r.Diagnosis),
		Message:   r.Message,
		Features:  r.Features.Values(v),
	}
}
