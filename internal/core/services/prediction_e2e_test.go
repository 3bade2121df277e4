package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breast-cancer-predictor/internal/adapters/secondary/modelfile"
	"breast-cancer-predictor/internal/core/domain"
)

// Large worst_area reads as malignant (label 0), in line with the usual
// encoding of the diagnostic dataset.
const reducedTreeBundle = `
model:
  type: decision_tree
  nodes:
    - {feature_idx: 3, threshold: 880.8, left_child: 1, right_child: 4}
    - {feature_idx: 4, threshold: 0.1358, left_child: 2, right_child: 3}
    - {class_label: 1, is_leaf: true}
    - {class_label: 0, is_leaf: true}
    - {class_label: 0, is_leaf: true}
`

func TestPredictionService_WithFileBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cancer_model_AI.yaml")
	require.NoError(t, os.WriteFile(path, []byte(reducedTreeBundle), 0o600))

	svc := NewPredictionService(domain.ReducedFeatureVariant(path), modelfile.NewLoader(), nil)
	require.NoError(t, svc.Load(context.Background()))

	malignant, err := svc.Infer(context.Background(), domain.FeatureVector{0.1471, 25.38, 184.6, 2019, 0.2654})
	require.NoError(t, err)
	assert.Equal(t, domain.DiagnosisMalignant, malignant.Diagnosis)

	benign, err := svc.Infer(context.Background(), domain.FeatureVector{0.0278, 13.5, 87.0, 549.0, 0.0911})
	require.NoError(t, err)
	assert.Equal(t, domain.DiagnosisBenign, benign.Diagnosis)

	zero, err := svc.Infer(context.Background(), make(domain.FeatureVector, 5))
	require.NoError(t, err)
	assert.Equal(t, domain.DiagnosisBenign, zero.Diagnosis)
}

func TestPredictionService_MissingFileBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breast_cancer_model.json")
	svc := NewPredictionService(domain.FullFeatureVariant(path), modelfile.NewLoader(), nil)

	assert.NotPanics(t, func() {
		err := svc.Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrModelFileNotFound)
	})
	assert.Nil(t, svc.Bundle())

	_, err := svc.Infer(context.Background(), make(domain.FeatureVector, 30))
	assert.ErrorIs(t, err, domain.ErrModelNotLoaded)
}
