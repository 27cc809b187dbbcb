// Package modelstore loads serialized predictor artifacts and assembles
// ready-to-use classifiers from them. Training happens elsewhere; this
// package only consumes its output.
package modelstore

// ArtifactSchemaVersion is the artifact layout this build understands.
// Artifacts with any other version are rejected at load time.
const ArtifactSchemaVersion = 1

// Model type identifiers stored in artifacts.
const (
	ModelTypeSoftVoting = "soft_voting_ensemble"
	ModelTypeSingle     = "single_classifier"
)

// Artifact is the serialized form of a fitted predictor: the ordered
// label table, the feature names in model-input order, the scaler
// parameters, and one parameter block per member model. At least one
// member block must be present.
type Artifact struct {
	SchemaVersion int      `msgpack:"schema_version"`
	ModelType     string   `msgpack:"model_type"`
	Labels        []string `msgpack:"labels"`
	FeatureNames  []string `msgpack:"feature_names"`

	Scaler   ScalerParams    `msgpack:"scaler"`
	Logistic *LogisticParams `msgpack:"logistic,omitempty"`
	SVM      *SVMParams      `msgpack:"svm,omitempty"`
	Forest   *ForestParams   `msgpack:"forest,omitempty"`
	MLP      *MLPParams      `msgpack:"mlp,omitempty"`
}

// ScalerParams carries the per-feature robust scaling parameters fitted
// at training time: center is the median, scale the interquartile range.
type ScalerParams struct {
	Center []float64 `msgpack:"center"`
	Scale  []float64 `msgpack:"scale"`
}

// LogisticParams carries fitted logistic regression coefficients.
type LogisticParams struct {
	Weights   []float64 `msgpack:"weights"`
	Intercept float64   `msgpack:"intercept"`
}

// SVMParams carries fitted RBF kernel parameters plus the Platt
// calibration pair.
type SVMParams struct {
	SupportVectors [][]float64 `msgpack:"support_vectors"`
	DualCoefs      []float64   `msgpack:"dual_coefs"`
	Gamma          float64     `msgpack:"gamma"`
	Intercept      float64     `msgpack:"intercept"`
	ProbA          float64     `msgpack:"prob_a"`
	ProbB          float64     `msgpack:"prob_b"`
}

// ForestParams carries every tree of a fitted random forest.
type ForestParams struct {
	NumClasses int          `msgpack:"num_classes"`
	Trees      []TreeParams `msgpack:"trees"`
}

// TreeParams is one fitted tree in flattened parallel-array form: entry
// i of each array describes node i. Leaf nodes carry -1 in Left.
type TreeParams struct {
	Left      []int       `msgpack:"left"`
	Right     []int       `msgpack:"right"`
	Feature   []int       `msgpack:"feature"`
	Threshold []float64   `msgpack:"threshold"`
	Counts    [][]float64 `msgpack:"counts"`
}

// MLPParams carries fitted perceptron layers in forward order.
type MLPParams struct {
	Layers []LayerParams `msgpack:"layers"`
}

// LayerParams is one dense layer: weights indexed [input][output].
type LayerParams struct {
	Weights [][]float64 `msgpack:"weights"`
	Biases  []float64   `msgpack:"biases"`
}

// Metadata mirrors the JSON sidecar written at training time. It is
// informational: nothing in the pipeline branches on it.
type Metadata struct {
	ModelType         string            `json:"model_type"`
	AUCScore          float64           `json:"auc_score"`
	Accuracy          float64           `json:"accuracy"`
	Features          []string          `json:"features"`
	FeatureImportance []float64         `json:"feature_importance"`
	TrainingSamples   int               `json:"training_samples"`
	TestSamples       int               `json:"test_samples"`
	HealthKitTypes    map[string]string `json:"healthkit_compatibility"`
	ModelComponents   []string          `json:"model_components"`
	Preprocessing     string            `json:"preprocessing"`
	CreatedDate       string            `json:"created_date"`
}
