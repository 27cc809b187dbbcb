// Package inference evaluates pre-trained rhythm classifiers. Model
// parameters are fitted elsewhere and loaded as data; this package only
// runs the forward pass. Every predictor is immutable after construction
// and safe for concurrent use.
package inference

// Classifier resolves a fixed-arity feature vector to a label and to a
// probability distribution over an ordered label space. The distribution
// index i corresponds to Labels()[i].
type Classifier interface {
	Predict(features []float64) string
	PredictProbabilities(features []float64) []float64
	Labels() []string
}

// Member is one trained model inside an ensemble. Members consume
// already-scaled features and emit a probability distribution over the
// ensemble's shared label space.
type Member interface {
	Name() string
	NumClasses() int
	Probabilities(features []float64) []float64
}

// Prediction is one classification outcome: the winning label, the full
// distribution in label-table order, and the confidence, which is always
// the maximum of the distribution.
type Prediction struct {
	Label        string
	Distribution []float64
	Confidence   float64
}

// Classify runs a classifier once and packages the outcome. The label and
// the confidence are derived from a single distribution evaluation, so
// they can never disagree.
func Classify(c Classifier, features []float64) Prediction {
	distribution := c.PredictProbabilities(features)
	winner := argmax(distribution)
	return Prediction{
		Label:        c.Labels()[winner],
		Distribution: distribution,
		Confidence:   distribution[winner],
	}
}

// argmax returns the index of the greatest value, preferring the lowest
// index on ties.
func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
