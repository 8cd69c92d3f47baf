package inviewport

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("invalid viewport options")

// ErrAlreadyAttached is returned by Attach when the detector still owns a
// live observation. Detach first to re-arm it.
var ErrAlreadyAttached = errors.New("inviewport: detector is already attached")

// ErrNoPlatform is returned by Attach when the detector was created without
// a Platform.
var ErrNoPlatform = errors.New("inviewport: no viewport platform configured")

// ConfigurationError reports options (or a target) that cannot be used to
// start an observation. It is always returned before any platform call.
type ConfigurationError struct {
	// Field is the offending option key ("threshold", "rootMargin", "target"),
	// or empty when the text as a whole could not be parsed.
	Field string
	// Input is the raw options text, when the options came from text.
	Input string
	// Err is the underlying cause.
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("inviewport: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("inviewport: invalid options %q: %v", e.Input, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrConfiguration) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
