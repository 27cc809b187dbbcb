package inference

import "math"

// LogisticRegression is a binary linear member: a sigmoid over the
// weighted feature sum. Emits [P(class 0), P(class 1)].
type LogisticRegression struct {
	weights   []float64
	intercept float64
}

// NewLogisticRegression builds a member from fitted coefficients.
func NewLogisticRegression(weights []float64, intercept float64) *LogisticRegression {
	w := make([]float64, len(weights))
	copy(w, weights)
	return &LogisticRegression{weights: w, intercept: intercept}
}

func (m *LogisticRegression) Name() string {
	return "logistic_regression"
}

func (m *LogisticRegression) NumClasses() int {
	return 2
}

func (m *LogisticRegression) Probabilities(features []float64) []float64 {
	z := m.intercept
	for i, w := range m.weights {
		z += w * features[i]
	}
	p := sigmoid(z)
	return []float64{1 - p, p}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
