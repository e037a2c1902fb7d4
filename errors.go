package forms

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every configuration failure,
// for use with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports an invalid mutation or declarative configuration.
// It is returned synchronously from the mutating call; the offending
// node's geometry keeps its prior, last-good value and sibling resolution
// is unaffected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// configErrorf builds a *ConfigError with a formatted reason.
func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
