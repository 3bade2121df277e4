package modelfile

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"breast-cancer-predictor/internal/core/domain"
)

// RandomForest takes the majority vote of its trees. Ties go to the
// smallest label.
type RandomForest struct {
	trees []*DecisionTree
}

func NewRandomForest(trees [][]TreeNode) (*RandomForest, error) {
	if len(trees) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidBundle, "random forest has no trees")
	}
	rf := &RandomForest{trees: make([]*DecisionTree, 0, len(trees))}
	for i, nodes := range trees {
		dt, err := NewDecisionTree(nodes)
		if err != nil {
			return nil, errors.WithMessagef(err, "tree %d", i)
		}
		rf.trees = append(rf.trees, dt)
	}
	return rf, nil
}

func (rf *RandomForest) Predict(X mat.Matrix) ([]int, error) {
	r, _ := X.Dims()
	votes := make([]map[int]int, r)
	for i := range votes {
		votes[i] = make(map[int]int)
	}

	for _, dt := range rf.trees {
		labels, err := dt.Predict(X)
		if err != nil {
			return nil, err
		}
		for i, label := range labels {
			votes[i][label]++
		}
	}

	out := make([]int, r)
	for i, counts := range votes {
		out[i] = majority(counts)
	}
	return out, nil
}

func majority(counts map[int]int) int {
	best, bestCount, first := 0, -1, true
	for label, n := range counts {
		if n > bestCount || (n == bestCount && label < best) || first {
			best, bestCount, first = label, n, false
		}
	}
	return best
}
