package ranking

// FeatureImportance is the averaged importance of one input feature across
// the tree-based models.
type FeatureImportance struct {
	Rank       int     `json:"rank"`
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"` // 0-1
}

// DatasetSummary describes the data the catalogue metrics were measured on.
type DatasetSummary struct {
	Samples         int      `json:"samples"`
	Features        int      `json:"features"`
	PositiveRate    float64  `json:"positive_rate"` // %
	CrossValidation string   `json:"cross_validation"`
	Protocol        []string `json:"protocol"`
}

// FeatureImportances returns the global feature ranking, most important first.
func FeatureImportances() []FeatureImportance {
	out := []FeatureImportance{
		{Feature: "Glucose Level", Importance: 0.28},
		{Feature: "BMI", Importance: 0.19},
		{Feature: "Age", Importance: 0.16},
		{Feature: "Diabetes Pedigree", Importance: 0.13},
		{Feature: "Blood Pressure", Importance: 0.11},
		{Feature: "Insulin Level", Importance: 0.08},
		{Feature: "Pregnancies", Importance: 0.03},
		{Feature: "Skin Thickness", Importance: 0.02},
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Dataset returns the evaluation dataset summary.
func Dataset() DatasetSummary {
	return DatasetSummary{
		Samples:         768,
		Features:        8,
		PositiveRate:    34.9,
		CrossValidation: "5-Fold",
		Protocol: []string{
			"Stratified K-Fold Cross-Validation",
			"Hyperparameter Optimization",
			"Statistical Significance Testing",
			"Data Preprocessing & Scaling",
		},
	}
}
