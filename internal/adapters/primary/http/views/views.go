package views

import (
	"embed"
	"html/template"
	"strconv"

	"breast-cancer-predictor/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	IndexPage = "index.html"
	FormPage  = "form.html"
)

// Load parses the embedded page templates.
func Load() (*template.Template, error) {
	funcMap := template.FuncMap{
		"isMalignant": func(d domain.Diagnosis) bool { return d == domain.DiagnosisMalignant },
	}
	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

// Field is one rendered number input.
type Field struct {
	Key   string
	Label string
	Value string
}

// VariantLink is an index page entry.
type VariantLink struct {
	Key         string
	Title       string
	NumFeatures int
	Ready       bool
}

// IndexData feeds index.html.
type IndexData struct {
	Variants []VariantLink
}

// FormData feeds form.html.
type FormData struct {
	Title      string
	VariantKey string
	Fields     []Field
	LoadError  string
	Warning    string
	InputError string
	Result     *domain.PredictionResult
}

// FieldsFromVector renders vec with four decimals in variant order. A nil
// vector renders every field at its 0.0 default.
func FieldsFromVector(v *domain.Variant, vec domain.FeatureVector) []Field {
	fields := make([]Field, len(v.Features))
	for i, f := range v.Features {
		val := 0.0
		if i < len(vec) {
			val = vec[i]
		}
		fields[i] = Field{Key: f.Key, Label: f.Label, Value: strconv.FormatFloat(val, 'f', 4, 64)}
	}
	return fields
}

// FieldsFromLookup echoes raw submitted values back, used when input was rejected.
func FieldsFromLookup(v *domain.Variant, lookup domain.Lookup) []Field {
	fields := FieldsFromVector(v, nil)
	for i, f := range v.Features {
		if raw, ok := lookup(f.Key); ok {
			fields[i].Value = raw
		}
	}
	return fields
}
