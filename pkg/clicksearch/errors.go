package clicksearch

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a blocking screen.
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrExitRequested indicates the window was closed or the power button
	// was pressed while a screen was showing.
	ErrExitRequested = errors.New("exit requested")
)

// InfrastructureError represents a failure in the SDL layer itself
// (window creation, font loading, icon rasterisation). The screens cannot
// recover from these.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("clicksearch: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("clicksearch: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
