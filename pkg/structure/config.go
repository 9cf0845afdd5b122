package structure

import "fmt"

// ConfigError reports a configuration field that failed validation.
// Config bundles across the toolkit are validated at construction and an
// object is never left in a partially-valid state: the first offending
// field aborts construction with one of these.
type ConfigError struct {
	Scope  string // which config bundle, e.g. "duct", "force plate", "rod"
	Field  string // the offending field name
	Reason string // what the constraint was, e.g. "must be positive"
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s config: %s %s", e.Scope, e.Field, e.Reason)
}

// Positive returns a ConfigError if v is not strictly positive, nil
// otherwise. Most config fields in the toolkit carry this constraint.
func Positive(scope, field string, v float64) error {
	if v <= 0 {
		return &ConfigError{Scope: scope, Field: field, Reason: fmt.Sprintf("must be positive, got %v", v)}
	}
	return nil
}

// NonNegative returns a ConfigError if v is negative, nil otherwise.
func NonNegative(scope, field string, v float64) error {
	if v < 0 {
		return &ConfigError{Scope: scope, Field: field, Reason: fmt.Sprintf("must be nonnegative, got %v", v)}
	}
	return nil
}
