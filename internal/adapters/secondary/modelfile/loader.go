package modelfile

import (
	"context"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"breast-cancer-predictor/internal/core/domain"
	"breast-cancer-predictor/internal/core/ports/output"
)

// Model types understood by the loader.
const (
	TypeLogisticRegression = "logistic_regression"
	TypeDecisionTree       = "decision_tree"
	TypeRandomForest       = "random_forest"
)

// bundleFile is the on-disk layout. JSON bundles decode through the same
// path since the YAML decoder accepts JSON documents.
type bundleFile struct {
	Model *modelSection `yaml:"model"`
	Cols  []string      `yaml:"cols"`
}

type modelSection struct {
	Type         string       `yaml:"type"`
	Classes      []int        `yaml:"classes"`
	Coefficients []float64    `yaml:"coefficients"`
	Intercept    float64      `yaml:"intercept"`
	Threshold    *float64     `yaml:"threshold"`
	Nodes        []TreeNode   `yaml:"nodes"`
	Trees        [][]TreeNode `yaml:"trees"`
}

type fileLoader struct{}

// NewLoader returns a ModelLoader reading bundles from the local filesystem.
func NewLoader() ports.ModelLoader {
	return &fileLoader{}
}

func (l *fileLoader) Load(ctx context.Context, path string, expectColumns bool) (*domain.ModelBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(domain.ErrModelFileNotFound, path)
		}
		return nil, errors.Wrapf(err, "read model bundle %s", path)
	}

	bundle, err := Decode(payload, expectColumns)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return bundle, nil
}

// Decode builds a bundle from an encoded document.
func Decode(payload []byte, expectColumns bool) (*domain.ModelBundle, error) {
	var f bundleFile
	if err := yaml.Unmarshal(payload, &f); err != nil {
		return nil, errors.Wrapf(domain.ErrInvalidBundle, "decode: %v", err)
	}
	if f.Model == nil {
		return nil, errors.Wrap(domain.ErrInvalidBundle, "missing model")
	}

	clf, err := buildClassifier(f.Model)
	if err != nil {
		return nil, err
	}

	if expectColumns && len(f.Cols) == 0 {
		return nil, domain.ErrMissingColumns
	}

	return &domain.ModelBundle{
		Classifier: clf,
		ModelType:  f.Model.Type,
		Columns:    f.Cols,
	}, nil
}

func buildClassifier(m *modelSection) (domain.Classifier, error) {
	switch m.Type {
	case TypeLogisticRegression:
		threshold := 0.5
		if m.Threshold != nil {
			threshold = *m.Threshold
		}
		return NewLogisticRegression(m.Coefficients, m.Intercept, threshold, m.Classes)
	case TypeDecisionTree:
		return NewDecisionTree(m.Nodes)
	case TypeRandomForest:
		return NewRandomForest(m.Trees)
	default:
		return nil, errors.Wrapf(domain.ErrUnsupportedModelType, "%q", m.Type)
	}
}
