package domain

// Diagnosis is the user-facing category derived from a classifier label.
type Diagnosis string

const (
	DiagnosisMalignant Diagnosis = "malignant"
	DiagnosisBenign    Diagnosis = "benign"
)

// MalignantLabel is the class the training data used for malignant tumours.
const MalignantLabel = 0

// Interpret maps a label to a diagnosis. Only MalignantLabel is malignant;
// every other value, including labels outside {0, 1}, reads as benign.
func Interpret(label int) Diagnosis {
	if label == MalignantLabel {
		return DiagnosisMalignant
	}
	return DiagnosisBenign
}

// Message is the result text shown to the user.
func (d Diagnosis) Message() string {
	if d == DiagnosisMalignant {
		return "Malignant (Cancerous)"
	}
	return "Benign (Not Cancerous)"
}

// PredictionResult is the outcome of one inference.
type PredictionResult struct {
	Variant   string        `json:"variant"`
	Label     int           `json:"label"`
	Diagnosis Diagnosis     `json:"diagnosis"`
	Message   string        `json:"message"`
	Features  FeatureVector `json:"features"`
}

// NewPredictionResult interprets label for the given variant.
func NewPredictionResult(variant string, label int, features FeatureVector) *PredictionResult {
	d := Interpret(label)
	return &PredictionResult{
		Variant:   variant,
		Label:     label,
		Diagnosis: d,
		Message:   d.Message(),
		Features:  features,
	}
}
