package domain

// Variant keys
const (
	VariantFull    = "full"
	VariantReduced = "reduced"
)

// Default bundle filenames, resolved relative to the working directory.
const (
	DefaultFullModelPath    = "breast_cancer_model.json"
	DefaultReducedModelPath = "Cancer_model_AI.json"
)

// Variant is one configuration of the prediction form: which measurements
// it collects, which bundle it loads and whether that bundle must carry its
// expected column list.
type Variant struct {
	Key            string
	Title          string
	Features       []Feature
	ModelPath      string
	ExpectsColumns bool
}

// FeatureKeys returns the feature keys in vector order.
func (v *Variant) FeatureKeys() []string {
	keys := make([]string, len(v.Features))
	for i, f := range v.Features {
		keys[i] = f.Key
	}
	return keys
}

// NumFeatures is the width of the vector this variant assembles.
func (v *Variant) NumFeatures() int {
	return len(v.Features)
}

// FullFeatureVariant collects all 30 standard measurements. The order is the
// column order the bundled model was trained on.
func FullFeatureVariant(modelPath string) *Variant {
	if modelPath == "" {
		modelPath = DefaultFullModelPath
	}
	return &Variant{
		Key:   VariantFull,
		Title: "Breast Cancer Prediction",
		Features: []Feature{
			{Key: "mean_radius", Label: "Mean Radius"},
			{Key: "mean_texture", Label: "Mean Texture"},
			{Key: "mean_perimeter", Label: "Mean Perimeter"},
			{Key: "mean_area", Label: "Mean Area"},
			{Key: "mean_smoothness", Label: "Mean Smoothness"},
			{Key: "mean_compactness", Label: "Mean Compactness"},
			{Key: "mean_concavity", Label: "Mean Concavity"},
			{Key: "mean_concave_points", Label: "Mean Concave Points"},
			{Key: "mean_symmetry", Label: "Mean Symmetry"},
			{Key: "mean_fractal_dimension", Label: "Mean Fractal Dimension"},
			{Key: "radius_error", Label: "Radius Error"},
			{Key: "texture_error", Label: "Texture Error"},
			{Key: "perimeter_error", Label: "Perimeter Error"},
			{Key: "area_error", Label: "Area Error"},
			{Key: "smoothness_error", Label: "Smoothness Error"},
			{Key: "compactness_error", Label: "Compactness Error"},
			{Key: "concavity_error", Label: "Concavity Error"},
			{Key: "concave_points_error", Label: "Concave Points Error"},
			{Key: "symmetry_error", Label: "Symmetry Error"},
			{Key: "fractal_dimension_error", Label: "Fractal Dimension Error"},
			{Key: "worst_radius", Label: "Worst Radius"},
			{Key: "worst_texture", Label: "Worst Texture"},
			{Key: "worst_perimeter", Label: "Worst Perimeter"},
			{Key: "worst_area", Label: "Worst Area"},
			{Key: "worst_smoothness", Label: "Worst Smoothness"},
			{Key: "worst_compactness", Label: "Worst Compactness"},
			{Key: "worst_concavity", Label: "Worst Concavity"},
			{Key: "worst_concave_points", Label: "Worst Concave Points"},
			{Key: "worst_symmetry", Label: "Worst Symmetry"},
			{Key: "worst_fractal_dimension", Label: "Worst Fractal Dimension"},
		},
		ModelPath:      modelPath,
		ExpectsColumns: true,
	}
}

// ReducedFeatureVariant collects the 5 measurements the smaller model uses.
func ReducedFeatureVariant(modelPath string) *Variant {
	if modelPath == "" {
		modelPath = DefaultReducedModelPath
	}
	return &Variant{
		Key:   VariantReduced,
		Title: "Breast Cancer Prediction App",
		Features: []Feature{
			{Key: "mean_concave_points", Label: "Mean Concave Points"},
			{Key: "worst_radius", Label: "Worst Radius"},
			{Key: "worst_perimeter", Label: "Worst Perimeter"},
			{Key: "worst_area", Label: "Worst Area"},
			{Key: "worst_concave_points", Label: "Worst Concave Points"},
		},
		ModelPath: modelPath,
	}
}
