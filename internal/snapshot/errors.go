package snapshot

import (
	"errors"
	"fmt"
)

// ErrRequiredData matches any failure to read a mandatory host source.
var ErrRequiredData = errors.New("required host data unavailable")

// RequiredError reports which mandatory source could not be read.
type RequiredError struct {
	Source string
	Err    error
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRequiredData, e.Source, e.Err)
}

func (e *RequiredError) Unwrap() []error {
	return []error{ErrRequiredData, e.Err}
}

func required(source string, err error) error {
	return &RequiredError{Source: source, Err: err}
}
