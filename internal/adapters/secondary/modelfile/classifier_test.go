package modelfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"breast-cancer-predictor/internal/core/domain"
)

func row(values ...float64) *mat.Dense {
	return mat.NewDense(1, len(values), values)
}

func TestLogisticRegression_Predict(t *testing.T) {
	lr, err := NewLogisticRegression([]float64{1, -1}, 0, 0.5, nil)
	require.NoError(t, err)

	labels, err := lr.Predict(row(2, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, labels)

	labels, err = lr.Predict(row(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, labels)
}

func TestLogisticRegression_BoundaryTakesPositiveClass(t *testing.T) {
	lr, err := NewLogisticRegression([]float64{1}, 0, 0.5, nil)
	require.NoError(t, err)

	labels, err := lr.Predict(row(0))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, labels)
}

func TestLogisticRegression_CustomClasses(t *testing.T) {
	lr, err := NewLogisticRegression([]float64{1}, 0, 0.5, []int{4, 2})
	require.NoError(t, err)

	labels, err := lr.Predict(mat.NewDense(2, 1, []float64{-5, 5}))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, labels)
}

func TestLogisticRegression_WidthMismatch(t *testing.T) {
	lr, err := NewLogisticRegression([]float64{1, 2, 3}, 0, 0.5, nil)
	require.NoError(t, err)

	_, err = lr.Predict(row(1, 2))
	assert.True(t, errors.Is(err, domain.ErrFeatureCountMismatch))
}

func TestLogisticRegression_InvalidThreshold(t *testing.T) {
	_, err := NewLogisticRegression([]float64{1}, 0, 1.5, nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidBundle))
}

func stump() []TreeNode {
	return []TreeNode{
		{FeatureIdx: 1, Threshold: 10, LeftChild: 1, RightChild: 2},
		{ClassLabel: 1, IsLeaf: true},
		{ClassLabel: 0, IsLeaf: true},
	}
}

func TestDecisionTree_Predict(t *testing.T) {
	dt, err := NewDecisionTree(stump())
	require.NoError(t, err)

	labels, err := dt.Predict(mat.NewDense(3, 2, []float64{
		0, 9,
		0, 10,
		0, 11,
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0}, labels)
}

func TestDecisionTree_FeatureOutOfRange(t *testing.T) {
	dt, err := NewDecisionTree(stump())
	require.NoError(t, err)

	_, err = dt.Predict(row(5))
	assert.True(t, errors.Is(err, domain.ErrFeatureCountMismatch))
}

func TestDecisionTree_RejectsBackwardChild(t *testing.T) {
	_, err := NewDecisionTree([]TreeNode{
		{FeatureIdx: 0, LeftChild: 0, RightChild: 1},
		{IsLeaf: true},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidBundle))
}

func TestRandomForest_MajorityVote(t *testing.T) {
	rf, err := NewRandomForest([][]TreeNode{
		stump(),
		stump(),
		{{ClassLabel: 0, IsLeaf: true}},
	})
	require.NoError(t, err)

	labels, err := rf.Predict(row(0, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, labels)
}

func TestRandomForest_TieGoesToSmallestLabel(t *testing.T) {
	rf, err := NewRandomForest([][]TreeNode{
		{{ClassLabel: 1, IsLeaf: true}},
		{{ClassLabel: 0, IsLeaf: true}},
	})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		labels, err := rf.Predict(row(0))
		require.NoError(t, err)
		assert.Equal(t, []int{0}, labels)
	}
}
