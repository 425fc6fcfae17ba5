package analyzer

import "fmt"

// ConfigurationError reports an invalid root or malformed component spec
// (spec.md §7): fatal, the session aborts immediately.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func newConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// InvariantViolation reports an internal failure to maintain the
// bidirectional afferent/efferent invariant (spec.md §7): this must never
// occur under correct graph code, and is fatal when it does.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string { return e.Message }

func newInvariantViolation(format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Message: fmt.Sprintf(format, args...)}
}
