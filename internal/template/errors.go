package template

import (
	"errors"
	"strings"
)

var (
	// ErrStoreUnavailable is returned when the templates location is missing or unreadable.
	ErrStoreUnavailable = errors.New("template store unavailable")
	// ErrTemplateNotFound is returned when an identifier matches no listed template.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrMalformedTemplate is returned when a template document has the wrong shape.
	ErrMalformedTemplate = errors.New("malformed template")
)

// MalformedError describes why a template document was rejected.
type MalformedError struct {
	Issues []ValidationIssue
	Cause  error
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedTemplate.Error())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	for _, issue := range e.Issues {
		b.WriteString("; ")
		if issue.Path != "" {
			b.WriteString(issue.Path)
			b.WriteString(": ")
		}
		b.WriteString(issue.Message)
	}
	return b.String()
}

// Is reports ErrMalformedTemplate so callers can use errors.Is.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedTemplate
}

// Unwrap returns the underlying decode error, if any.
func (e *MalformedError) Unwrap() error {
	return e.Cause
}
