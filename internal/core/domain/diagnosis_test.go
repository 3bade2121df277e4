package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	assert.Equal(t, DiagnosisMalignant, Interpret(0))
	assert.Equal(t, DiagnosisBenign, Interpret(1))
	// Out-of-range labels are not rejected; they read as benign.
	assert.Equal(t, DiagnosisBenign, Interpret(2))
	assert.Equal(t, DiagnosisBenign, Interpret(-7))
}

func TestDiagnosis_Message(t *testing.T) {
	assert.Equal(t, "Malignant (Cancerous)", DiagnosisMalignant.Message())
	assert.Equal(t, "Benign (Not Cancerous)", DiagnosisBenign.Message())
}

func TestNewPredictionResult(t *testing.T) {
	r := NewPredictionResult(VariantFull, 0, FeatureVector{1})

	assert.Equal(t, VariantFull, r.Variant)
	assert.Equal(t, 0, r.Label)
	assert.Equal(t, DiagnosisMalignant, r.Diagnosis)
	assert.Equal(t, "Malignant (Cancerous)", r.Message)
}
