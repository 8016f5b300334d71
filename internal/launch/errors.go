package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates a parameter outside its physically
	// valid domain, detected before any integration runs.
	ErrInvalidConfiguration = errors.New("launch: invalid configuration")

	// ErrNonConvergent indicates the step bound passed without the run
	// reaching its terminal condition.
	ErrNonConvergent = errors.New("launch: step bound exceeded")
)

// ConfigError reports which parameter failed validation and why.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("launch: invalid configuration: %s=%g %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NonConvergentError carries where a run gave up. The partial sample
// sequence accumulated so far travels alongside in the Result.
type NonConvergentError struct {
	Steps  int
	Time   float64
	Reason string
}

func (e *NonConvergentError) Error() string {
	return fmt.Sprintf("launch: %s after %d steps (t=%.4f)", e.Reason, e.Steps, e.Time)
}

func (e *NonConvergentError) Unwrap() error {
	return ErrNonConvergent
}
