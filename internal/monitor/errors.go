package monitor

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by Start when no source file is set.
	ErrNotConfigured = errors.New("no source file configured")
	// ErrAlreadyRunning is returned by Start and Configure while a poller is active.
	ErrAlreadyRunning = errors.New("monitor already running")
	// ErrUnknownCategory is returned by Configure for keys outside the enumeration.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrLoad matches every *LoadError.
	ErrLoad = errors.New("load source")
)

// LoadError reports that the source could not be read when monitoring
// started. The monitor stays idle.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrLoad and the underlying I/O error.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}
