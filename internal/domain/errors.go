package domain

import "errors"

// Domain errors
var (
	ErrNoSummary     = errors.New("no summary available")
	ErrInvalidFile   = errors.New("invalid file")
	ErrFileTooLarge  = errors.New("file too large")
	ErrEmptyUpload   = errors.New("empty upload")
	ErrUnknownPolicy = errors.New("unknown status policy")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
