package domain

import "errors"

// ============================================================================
// Variant Errors
// ============================================================================

var (
	ErrVariantNotFound     = errors.New("variant not found")
	ErrInvalidFeatureValue = errors.New("feature value must be a finite number")
)

// ============================================================================
// Model Bundle Errors
// ============================================================================

// Load errors
var (
	ErrModelFileNotFound    = errors.New("model file not found")
	ErrInvalidBundle        = errors.New("invalid model bundle")
	ErrUnsupportedModelType = errors.New("unsupported model type")
	ErrMissingColumns       = errors.New("model bundle has no expected column list")
)

// Inference errors
var (
	ErrModelNotLoaded       = errors.New("model not loaded, prediction unavailable")
	ErrFeatureCountMismatch = errors.New("feature count does not match model")
	ErrEmptyPrediction      = errors.New("model returned no label")
)
