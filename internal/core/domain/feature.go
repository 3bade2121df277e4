package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Feature is one named diagnostic measurement collected from the input surface.
type Feature struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FeatureVector is the positional row fed to a classifier. Position i holds
// the value of Variant.Features[i].
type FeatureVector []float64

// Lookup returns the raw value submitted for a feature key.
type Lookup func(key string) (string, bool)

// CollectFeatures assembles a fresh vector in the variant's feature order.
// Missing or blank values default to 0.0. Present values only have to parse
// as finite floats; no range checks are applied.
func CollectFeatures(v *Variant, lookup Lookup) (FeatureVector, error) {
	vec := make(FeatureVector, len(v.Features))
	for i, f := range v.Features {
		raw, ok := lookup(f.Key)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("%s: %w", f.Key, ErrInvalidFeatureValue)
		}
		vec[i] = val
	}
	return vec, nil
}

// CollectFeatureMap is CollectFeatures for already decoded numbers. Unknown
// keys are ignored.
func CollectFeatureMap(v *Variant, values map[string]float64) (FeatureVector, error) {
	vec := make(FeatureVector, len(v.Features))
	for i, f := range v.Features {
		val, ok := values[f.Key]
		if !ok {
			continue
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("%s: %w", f.Key, ErrInvalidFeatureValue)
		}
		vec[i] = val
	}
	return vec, nil
}

// Values maps feature keys back to the values in vec, for re-rendering a form.
func (vec FeatureVector) Values(v *Variant) map[string]float64 {
	out := make(map[string]float64, len(v.Features))
	for i, f := range v.Features {
		if i < len(vec) {
			out[f.Key] = vec[i]
		}
	}
	return out
}
