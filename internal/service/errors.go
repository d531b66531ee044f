package service

import "errors"

var (
	// ErrUnauthenticated covers missing, unknown or expired tokens and bad credentials.
	ErrUnauthenticated = errors.New("unauthorized")
	// ErrNotFound is returned both for absent records and for records the
	// requester may not read; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrFolderHasNoContent is returned when content is requested for a folder.
	ErrFolderHasNoContent = errors.New("a folder doesn't have content")
)

// ValidationError rejects a create request. Message is safe to show clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrMissingName     = &ValidationError{Message: "Missing name"}
	ErrInvalidKind     = &ValidationError{Message: "Missing type"}
	ErrMissingData     = &ValidationError{Message: "Missing data"}
	ErrParentNotFound  = &ValidationError{Message: "Parent not found"}
	ErrParentNotFolder = &ValidationError{Message: "Parent is not a folder"}
)
