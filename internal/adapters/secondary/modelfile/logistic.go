package modelfile

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"breast-cancer-predictor/internal/core/domain"
)

// LogisticRegression is a binary linear classifier. A row scores
// sigmoid(w·x + b); scores at or above the threshold take Classes[1].
type LogisticRegression struct {
	weights   *mat.VecDense
	intercept float64
	threshold float64
	classes   [2]int
}

func NewLogisticRegression(coefficients []float64, intercept, threshold float64, classes []int) (*LogisticRegression, error) {
	if len(coefficients) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidBundle, "logistic regression has no coefficients")
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, errors.Wrapf(domain.ErrInvalidBundle, "threshold %v outside (0, 1)", threshold)
	}

	lr := &LogisticRegression{
		weights:   mat.NewVecDense(len(coefficients), append([]float64(nil), coefficients...)),
		intercept: intercept,
		threshold: threshold,
		classes:   [2]int{0, 1},
	}
	switch len(classes) {
	case 0:
	case 2:
		lr.classes = [2]int{classes[0], classes[1]}
	default:
		return nil, errors.Wrapf(domain.ErrInvalidBundle, "logistic regression needs 2 classes, got %d", len(classes))
	}
	return lr, nil
}

func (lr *LogisticRegression) Predict(X mat.Matrix) ([]int, error) {
	r, c := X.Dims()
	if c != lr.weights.Len() {
		return nil, errors.Wrapf(domain.ErrFeatureCountMismatch, "got %d columns, model has %d coefficients", c, lr.weights.Len())
	}

	var z mat.VecDense
	z.MulVec(X, lr.weights)

	labels := make([]int, r)
	for i := 0; i < r; i++ {
		if sigmoid(z.AtVec(i)+lr.intercept) >= lr.threshold {
			labels[i] = lr.classes[1]
		} else {
			labels[i] = lr.classes[0]
		}
	}
	return labels, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
