package modelfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breast-cancer-predictor/internal/core/domain"
)

func writeBundle(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const jsonBundle = `{
  "model": {
    "type": "logistic_regression",
    "coefficients": [1.0, -2.0],
    "intercept": 0.5
  },
  "cols": ["mean radius", "mean texture"]
}`

const yamlBundle = `
model:
  type: decision_tree
  nodes:
    - {feature_idx: 0, threshold: 0.5, left_child: 1, right_child: 2, is_leaf: false}
    - {class_label: 0, is_leaf: true}
    - {class_label: 1, is_leaf: true}
`

func TestLoader_LoadJSON(t *testing.T) {
	path := writeBundle(t, "model.json", jsonBundle)

	bundle, err := NewLoader().Load(context.Background(), path, true)
	require.NoError(t, err)
	assert.Equal(t, TypeLogisticRegression, bundle.ModelType)
	assert.Equal(t, []string{"mean radius", "mean texture"}, bundle.Columns)
	assert.IsType(t, &LogisticRegression{}, bundle.Classifier)
}

func TestLoader_LoadYAMLWithoutColumns(t *testing.T) {
	path := writeBundle(t, "model.yaml", yamlBundle)

	bundle, err := NewLoader().Load(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, TypeDecisionTree, bundle.ModelType)
	assert.Empty(t, bundle.Columns)
}

func TestLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	bundle, err := NewLoader().Load(context.Background(), path, false)
	assert.Nil(t, bundle)
	assert.True(t, errors.Is(err, domain.ErrModelFileNotFound))
	assert.Contains(t, err.Error(), "absent.json")
}

func TestLoader_ExpectColumnsButNone(t *testing.T) {
	path := writeBundle(t, "model.yaml", yamlBundle)

	_, err := NewLoader().Load(context.Background(), path, true)
	assert.True(t, errors.Is(err, domain.ErrMissingColumns))
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().Load(ctx, "unused.json", false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"garbage", "{not: [valid", domain.ErrInvalidBundle},
		{"no model key", `{"cols": ["a"]}`, domain.ErrInvalidBundle},
		{"unknown type", `{"model": {"type": "svm"}}`, domain.ErrUnsupportedModelType},
		{"empty coefficients", `{"model": {"type": "logistic_regression"}}`, domain.ErrInvalidBundle},
		{"three classes", `{"model": {"type": "logistic_regression", "coefficients": [1], "classes": [0, 1, 2]}}`, domain.ErrInvalidBundle},
		{"empty tree", `{"model": {"type": "decision_tree"}}`, domain.ErrInvalidBundle},
		{"empty forest", `{"model": {"type": "random_forest"}}`, domain.ErrInvalidBundle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.payload), false)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDecode_RandomForest(t *testing.T) {
	payload := `
model:
  type: random_forest
  trees:
    - [{class_label: 1, is_leaf: true}]
    - [{class_label: 0, is_leaf: true}]
    - [{class_label: 1, is_leaf: true}]
`
	bundle, err := Decode([]byte(payload), false)
	require.NoError(t, err)
	assert.IsType(t, &RandomForest{}, bundle.Classifier)
}
