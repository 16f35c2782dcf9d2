package world

import "fmt"

// InvalidConfigurationError reports a config that failed validation before
// generation began.
type InvalidConfigurationError struct {
	Reason string
}

func NewInvalidConfiguration(reason string) *InvalidConfigurationError {
	return &InvalidConfigurationError{Reason: reason}
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e *InvalidConfigurationError) Kind() string { return "InvalidConfiguration" }

// DegenerateFieldError reports a stage producing a field that fails a
// basic sanity check (NaN or infinite tiles) and cannot safely feed the
// next stage.
type DegenerateFieldError struct {
	Stage  string
	Reason string
}

func NewDegenerateField(stage, reason string) *DegenerateFieldError {
	return &DegenerateFieldError{Stage: stage, Reason: reason}
}

func (e *DegenerateFieldError) Error() string {
	return fmt.Sprintf("degenerate field at stage %s: %s", e.Stage, e.Reason)
}

func (e *DegenerateFieldError) Kind() string { return "DegenerateField" }

// ExhaustedRetriesError reports a bounded retry loop (e.g. wanderer
// starting-position rejection sampling) giving up without converging.
type ExhaustedRetriesError struct {
	Operation string
	Attempts  int
}

func NewExhaustedRetries(operation string, attempts int) *ExhaustedRetriesError {
	return &ExhaustedRetriesError{Operation: operation, Attempts: attempts}
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("%s: exhausted %d retries without converging", e.Operation, e.Attempts)
}

func (e *ExhaustedRetriesError) Kind() string { return "ExhaustedRetries" }

// Kinded is implemented by every error type this package defines, so
// callers can branch on Kind() without a type switch over concrete types.
// Context cancellation and wrapped stage errors from Generate do not
// implement it.
type Kinded interface {
	error
	Kind() string
}

var (
	_ Kinded = (*InvalidConfigurationError)(nil)
	_ Kinded = (*DegenerateFieldError)(nil)
	_ Kinded = (*ExhaustedRetriesError)(nil)
)
