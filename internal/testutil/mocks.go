package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"gonum.org/v1/gonum/mat"

	"breast-cancer-predictor/internal/core/domain"
)

// MockModelLoader is a mock of ports.ModelLoader.
type MockModelLoader struct {
	mock.Mock
}

func (m *MockModelLoader) Load(ctx context.Context, path string, expectColumns bool) (*domain.ModelBundle, error) {
	args := m.Called(ctx, path, expectColumns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelBundle), args.Error(1)
}

// MockClassifier is a mock of domain.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(X mat.Matrix) ([]int, error) {
	args := m.Called(X)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// MockRecorder is a mock of ports.PredictionRecorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ModelState(variant string, state domain.ModelState) {
	m.Called(variant, state)
}

func (m *MockRecorder) PredictionSucceeded(variant string, diagnosis domain.Diagnosis, elapsed time.Duration) {
	m.Called(variant, diagnosis, elapsed)
}

func (m *MockRecorder) PredictionFailed(variant string, reason string) {
	m.Called(variant, reason)
}

// ConstClassifier returns the same label for every row.
type ConstClassifier struct {
	Label int
}

func (c ConstClassifier) Predict(X mat.Matrix) ([]int, error) {
	r, _ := X.Dims()
	labels := make([]int, r)
	for i := range labels {
		labels[i] = c.Label
	}
	return labels, nil
}

// LoadedBundle wraps a classifier in a bundle with the given columns.
func LoadedBundle(clf domain.Classifier, cols ...string) *domain.ModelBundle {
	return &domain.ModelBundle{Classifier: clf, ModelType: "test", Columns: cols}
}
