package inference

import (
	"fmt"
	"math"
)

// RBFSVM is a binary support-vector member with a radial basis kernel.
// The raw decision value is mapped to a probability through the Platt
// sigmoid fitted at training time. Emits [P(class 0), P(class 1)].
type RBFSVM struct {
	supportVectors [][]float64
	dualCoefs      []float64
	gamma          float64
	intercept      float64
	probA          float64
	probB          float64
}

// NewRBFSVM builds a member from fitted kernel parameters. Each support
// vector must have a matching dual coefficient.
func NewRBFSVM(supportVectors [][]float64, dualCoefs []float64, gamma, intercept, probA, probB float64) (*RBFSVM, error) {
	if len(supportVectors) == 0 || len(supportVectors) != len(dualCoefs) {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("svm support vectors and dual coefficients differ: %d vs %d",
				len(supportVectors), len(dualCoefs)),
		}
	}

	vectors := make([][]float64, len(supportVectors))
	for i, sv := range supportVectors {
		vectors[i] = make([]float64, len(sv))
		copy(vectors[i], sv)
	}
	coefs := make([]float64, len(dualCoefs))
	copy(coefs, dualCoefs)

	return &RBFSVM{
		supportVectors: vectors,
		dualCoefs:      coefs,
		gamma:          gamma,
		intercept:      intercept,
		probA:          probA,
		probB:          probB,
	}, nil
}

func (m *RBFSVM) Name() string {
	return "svm_rbf"
}

func (m *RBFSVM) NumClasses() int {
	return 2
}

func (m *RBFSVM) Probabilities(features []float64) []float64 {
	decision := m.intercept
	for i, sv := range m.supportVectors {
		decision += m.dualCoefs[i] * math.Exp(-m.gamma*squaredDistance(features, sv))
	}

	p := 1.0 / (1.0 + math.Exp(m.probA*decision+m.probB))
	return []float64{1 - p, p}
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
