package classmark

import (
	"errors"
	"fmt"
)

// Sentinel errors for common generation failure conditions.
var (
	ErrNoStudents = errors.New("classmark: class has no students")
	ErrNoTemplate = errors.New("classmark: no template document given")
	ErrEncrypted  = errors.New("classmark: template document is encrypted")
	ErrInvalidBox = errors.New("classmark: mask box does not fit on the page")
)

// OpError represents an error that occurred during a specific generation
// step. It wraps an underlying error and includes the operation name for
// context.
type OpError struct {
	Op  string // operation name, e.g. "Generate", "Inspect"
	Err error  // underlying error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classmark.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("classmark.%s: unknown error", e.Op)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
