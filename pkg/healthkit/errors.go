package healthkit

import (
	"fmt"
	"time"
)

// EmptyInputError reports that a signal arrived with no samples at all,
// before any plausibility filtering. An input that merely filters down to
// nothing does not produce this error.
type EmptyInputError struct {
	Signal SignalKind
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no %s samples provided", e.Signal)
}

// InsufficientDataError reports that a window holds fewer heart rate
// samples than inference requires. Recoverable: the caller can retry the
// analysis once more data has accumulated.
type InsufficientDataError struct {
	Observed     int
	Required     int
	WindowLength time.Duration
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient heart rate data in %s window: %d samples, need %d",
		e.WindowLength, e.Observed, e.Required)
}
