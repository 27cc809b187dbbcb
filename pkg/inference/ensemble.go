package inference

import "fmt"

// SoftVotingEnsemble averages member distributions over a shared, ordered
// label space. Every member must emit exactly that label space; the
// mismatch is caught here at construction, never at prediction time.
type SoftVotingEnsemble struct {
	scaler  *RobustScaler
	labels  []string
	members []Member
}

// NewSoftVotingEnsemble builds an ensemble from a fitted scaler, an
// ordered label table, and at least one member.
func NewSoftVotingEnsemble(scaler *RobustScaler, labels []string, members []Member) (*SoftVotingEnsemble, error) {
	if err := validatePredictor(scaler, labels, members); err != nil {
		return nil, err
	}

	return &SoftVotingEnsemble{
		scaler:  scaler,
		labels:  copyLabels(labels),
		members: append([]Member(nil), members...),
	}, nil
}

// Labels returns a copy of the ordered label table.
func (e *SoftVotingEnsemble) Labels() []string {
	return copyLabels(e.labels)
}

// PredictProbabilities scales the features once and returns the
// arithmetic mean of every member's distribution.
func (e *SoftVotingEnsemble) PredictProbabilities(features []float64) []float64 {
	scaled := e.scaler.Transform(features)

	distribution := make([]float64, len(e.labels))
	for _, m := range e.members {
		for c, p := range m.Probabilities(scaled) {
			distribution[c] += p
		}
	}
	for c := range distribution {
		distribution[c] /= float64(len(e.members))
	}
	return distribution
}

// Predict resolves the highest-probability index through the label table.
func (e *SoftVotingEnsemble) Predict(features []float64) string {
	return e.labels[argmax(e.PredictProbabilities(features))]
}

// SingleClassifier wraps one member behind the same Classifier surface,
// for deployments that ship a lone model instead of an ensemble.
type SingleClassifier struct {
	scaler *RobustScaler
	labels []string
	member Member
}

// NewSingleClassifier builds a one-member classifier.
func NewSingleClassifier(scaler *RobustScaler, labels []string, member Member) (*SingleClassifier, error) {
	if member == nil {
		return nil, &ConfigurationError{Message: "classifier requires a member model"}
	}
	if err := validatePredictor(scaler, labels, []Member{member}); err != nil {
		return nil, err
	}

	return &SingleClassifier{
		scaler: scaler,
		labels: copyLabels(labels),
		member: member,
	}, nil
}

// Labels returns a copy of the ordered label table.
func (s *SingleClassifier) Labels() []string {
	return copyLabels(s.labels)
}

// PredictProbabilities scales the features and evaluates the member.
func (s *SingleClassifier) PredictProbabilities(features []float64) []float64 {
	return s.member.Probabilities(s.scaler.Transform(features))
}

// Predict resolves the highest-probability index through the label table.
func (s *SingleClassifier) Predict(features []float64) string {
	return s.labels[argmax(s.PredictProbabilities(features))]
}

// validatePredictor enforces the construction invariants shared by every
// classifier shape.
func validatePredictor(scaler *RobustScaler, labels []string, members []Member) error {
	if scaler == nil {
		return &ConfigurationError{Message: "classifier requires a fitted scaler"}
	}
	if len(labels) < 2 {
		return &ConfigurationError{
			Message: fmt.Sprintf("label table needs at least 2 labels, got %d", len(labels)),
		}
	}
	if len(members) == 0 {
		return &ConfigurationError{Message: "classifier has no member models"}
	}
	for _, m := range members {
		if m.NumClasses() != len(labels) {
			return &ConfigurationError{
				Message: fmt.Sprintf("member %s emits %d classes, label table has %d",
					m.Name(), m.NumClasses(), len(labels)),
			}
		}
	}
	return nil
}

func copyLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
