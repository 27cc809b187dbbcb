package inference

import "fmt"

// ConfigurationError reports a predictor that cannot be safely used:
// mismatched label spaces, missing members, or malformed parameters.
// Always raised at construction time, so a broken predictor is never
// reachable by a prediction call.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("predictor configuration error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("predictor configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
