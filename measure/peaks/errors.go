package peaks

import "errors"

var (
	// ErrTraceTooShort is returned when a trace has too few samples for the
	// requested analysis.
	ErrTraceTooShort = errors.New("peaks: trace too short")
	// ErrFlatTrace is returned when a trace has no variation around its mean.
	ErrFlatTrace = errors.New("peaks: trace has no variation")
	// ErrNoPeriod is returned when no repetition period is found in the
	// requested lag range.
	ErrNoPeriod = errors.New("peaks: no period found")
)
