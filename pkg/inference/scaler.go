package inference

import "fmt"

// RobustScaler centers each feature on its training median and divides by
// its training interquartile range, matching the preprocessing the member
// models were fitted behind.
type RobustScaler struct {
	center []float64
	scale  []float64
}

// NewRobustScaler builds a scaler from per-feature center and scale
// parameters fitted at training time.
func NewRobustScaler(center, scale []float64) (*RobustScaler, error) {
	if len(center) == 0 || len(center) != len(scale) {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("scaler center and scale lengths differ: %d vs %d", len(center), len(scale)),
		}
	}

	c := make([]float64, len(center))
	s := make([]float64, len(scale))
	copy(c, center)
	copy(s, scale)
	return &RobustScaler{center: c, scale: s}, nil
}

// NumFeatures returns the feature arity the scaler was fitted on.
func (r *RobustScaler) NumFeatures() int {
	return len(r.center)
}

// Transform scales one feature vector into a new slice. A zero scale
// entry passes the centered feature through undivided, so constant
// training features cannot produce infinities.
func (r *RobustScaler) Transform(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for i, v := range features {
		s := r.scale[i]
		if s == 0 {
			s = 1
		}
		scaled[i] = (v - r.center[i]) / s
	}
	return scaled
}
