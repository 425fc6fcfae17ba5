package config

import "fmt"

// ConfigurationError reports an unreadable property file or a malformed
// component/filter specification, per spec.md §7's taxonomy ("invalid root,
// unreadable property file, malformed component spec ... session aborts").
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func newConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}
