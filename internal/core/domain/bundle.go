package domain

import "gonum.org/v1/gonum/mat"

// Classifier is a trained model. Predict returns one label per row of X.
type Classifier interface {
	Predict(X mat.Matrix) ([]int, error)
}

// ModelBundle is a deserialized classifier plus optional metadata. It is
// never mutated after load and may be shared across requests.
type ModelBundle struct {
	Classifier Classifier
	ModelType  string
	// Columns is the feature order the model was trained on. Informational.
	Columns []string
}

// ModelState is the lifecycle state of a variant's bundle.
type ModelState string

const (
	ModelStateUnloaded   ModelState = "unloaded"
	ModelStateLoaded     ModelState = "loaded"
	ModelStateLoadFailed ModelState = "load_failed"
)
