package modelfile

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"breast-cancer-predictor/internal/core/domain"
)

// TreeNode is one node of a flattened tree. Children always sit at a higher
// index than their parent, so a walk from the root terminates.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx" yaml:"feature_idx"`
	Threshold  float64 `json:"threshold" yaml:"threshold"`
	LeftChild  int     `json:"left_child" yaml:"left_child"`
	RightChild int     `json:"right_child" yaml:"right_child"`
	ClassLabel int     `json:"class_label" yaml:"class_label"`
	IsLeaf     bool    `json:"is_leaf" yaml:"is_leaf"`
}

// DecisionTree routes a row left when x[feature] <= threshold.
type DecisionTree struct {
	nodes []TreeNode
}

func NewDecisionTree(nodes []TreeNode) (*DecisionTree, error) {
	if len(nodes) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidBundle, "decision tree has no nodes")
	}
	for i, n := range nodes {
		if n.IsLeaf {
			continue
		}
		if n.FeatureIdx < 0 {
			return nil, errors.Wrapf(domain.ErrInvalidBundle, "node %d: negative feature index", i)
		}
		if n.LeftChild <= i || n.LeftChild >= len(nodes) || n.RightChild <= i || n.RightChild >= len(nodes) {
			return nil, errors.Wrapf(domain.ErrInvalidBundle, "node %d: child index out of range", i)
		}
	}
	return &DecisionTree{nodes: append([]TreeNode(nil), nodes...)}, nil
}

func (dt *DecisionTree) Predict(X mat.Matrix) ([]int, error) {
	r, c := X.Dims()
	labels := make([]int, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, X)
		label, err := dt.predictRow(row)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}

func (dt *DecisionTree) predictRow(row []float64) (int, error) {
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if node.FeatureIdx >= len(row) {
			return 0, errors.Wrapf(domain.ErrFeatureCountMismatch, "tree reads feature %d of %d", node.FeatureIdx, len(row))
		}
		if row[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}
