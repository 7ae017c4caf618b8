package domainsgen

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a generator failure.
type ErrorKind string

const (
	// KindInput covers a missing, unreadable or malformed domain list.
	KindInput ErrorKind = "input"
	// KindRender covers invalid render options or a formatter failure.
	KindRender ErrorKind = "render"
	// KindOutput covers an output directory or file that cannot be written.
	KindOutput ErrorKind = "output"
)

// Error wraps an underlying error with the stage that failed and the
// offending path.
type Error struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s error: %s", e.Kind, e.Op)
	if e.Path != "" {
		base += " " + e.Path
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a generator Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind == kind
	}
	return false
}

func inputError(op, path string, err error) error {
	return &Error{Op: op, Kind: KindInput, Path: path, Err: err}
}

func outputError(op, path string, err error) error {
	return &Error{Op: op, Kind: KindOutput, Path: path, Err: err}
}
