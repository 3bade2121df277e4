package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"breast-cancer-predictor/internal/core/domain"
	"breast-cancer-predictor/internal/core/ports/output"
)

// PredictionService owns one variant's bundle. The bundle is loaded at most
// once; a failed load leaves the service degraded for the life of the process.
type PredictionService struct {
	variant  *domain.Variant
	loader   ports.ModelLoader
	recorder ports.PredictionRecorder

	once    sync.Once
	mu      sync.RWMutex
	state   domain.ModelState
	bundle  *domain.ModelBundle
	loadErr error
}

func NewPredictionService(variant *domain.Variant, loader ports.ModelLoader, recorder ports.PredictionRecorder) *PredictionService {
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}
	return &PredictionService{
		variant:  variant,
		loader:   loader,
		recorder: recorder,
		state:    domain.ModelStateUnloaded,
	}
}

func (s *PredictionService) Variant() *domain.Variant {
	return s.variant
}

// Load deserializes the bundle on first call. Later calls return the outcome
// of the first one without touching the filesystem again.
func (s *PredictionService) Load(ctx context.Context) error {
	s.once.Do(func() { s.load(ctx) })

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *PredictionService) load(ctx context.Context) {
	logger := log.WithFields(log.Fields{
		"variant":    s.variant.Key,
		"model_path": s.variant.ModelPath,
	})

	bundle, err := s.loader.Load(ctx, s.variant.ModelPath, s.variant.ExpectsColumns)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = domain.ModelStateLoadFailed
		s.loadErr = err
		s.recorder.ModelState(s.variant.Key, s.state)
		logger.WithError(err).Error("model load failed, predictions disabled")
		return
	}

	if n := len(bundle.Columns); n > 0 && n != s.variant.NumFeatures() {
		logger.WithFields(log.Fields{
			"bundle_columns": n,
			"form_features":  s.variant.NumFeatures(),
		}).Warn("bundle column count differs from form features")
	}

	s.bundle = bundle
	s.state = domain.ModelStateLoaded
	s.recorder.ModelState(s.variant.Key, s.state)
	logger.WithField("model_type", bundle.ModelType).Info("model loaded")
}

func (s *PredictionService) IsReady() bool {
	return s.Bundle() != nil
}

func (s *PredictionService) State() domain.ModelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *PredictionService) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Bundle returns the loaded bundle, or nil when none is available.
func (s *PredictionService) Bundle() *domain.ModelBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Infer runs one single-sample prediction. Without a loaded bundle it returns
// domain.ErrModelNotLoaded and never reaches a classifier.
func (s *PredictionService) Infer(ctx context.Context, vec domain.FeatureVector) (*domain.PredictionResult, error) {
	bundle := s.Bundle()
	if bundle == nil {
		s.recorder.PredictionFailed(s.variant.Key, "model_not_loaded")
		return nil, domain.ErrModelNotLoaded
	}

	if len(vec) != s.variant.NumFeatures() {
		s.recorder.PredictionFailed(s.variant.Key, "feature_count")
		return nil, fmt.Errorf("got %d values, want %d: %w", len(vec), s.variant.NumFeatures(), domain.ErrFeatureCountMismatch)
	}

	row := make([]float64, len(vec))
	copy(row, vec)
	X := mat.NewDense(1, len(row), row)

	start := time.Now()
	labels, err := bundle.Classifier.Predict(X)
	if err != nil {
		s.recorder.PredictionFailed(s.variant.Key, "predict_error")
		return nil, fmt.Errorf("predict %s: %w", s.variant.Key, err)
	}
	if len(labels) == 0 {
		s.recorder.PredictionFailed(s.variant.Key, "empty_prediction")
		return nil, domain.ErrEmptyPrediction
	}
	elapsed := time.Since(start)

	result := domain.NewPredictionResult(s.variant.Key, labels[0], domain.FeatureVector(row))
	s.recorder.PredictionSucceeded(s.variant.Key, result.Diagnosis, elapsed)

	log.WithFields(log.Fields{
		"variant":   s.variant.Key,
		"label":     result.Label,
		"diagnosis": result.Diagnosis,
	}).Debug("prediction completed")

	return result, nil
}
