package ports

import (
	"time"

	"breast-cancer-predictor/internal/core/domain"
)

// PredictionRecorder observes model lifecycle and inference outcomes.
type PredictionRecorder interface {
	ModelState(variant string, state domain.ModelState)
	PredictionSucceeded(variant string, diagnosis domain.Diagnosis, elapsed time.Duration)
	PredictionFailed(variant string, reason string)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) ModelState(string, domain.ModelState) {}
func (NopRecorder) PredictionSucceeded(string, domain.Diagnosis, time.Duration) {}
func (NopRecorder) PredictionFailed(string, string) {}
