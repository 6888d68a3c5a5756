package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError reports that no row matched the given identifier.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// DuplicateKeyError reports a unique-constraint violation on create.
type DuplicateKeyError struct {
	Entity string
	ID     string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Entity, e.ID)
}

// ReferentialConflictError reports a delete blocked by dependent rows.
type ReferentialConflictError struct {
	Entity string
	ID     string
}

func (e *ReferentialConflictError) Error() string {
	return fmt.Sprintf("%s %s is still referenced by other records", e.Entity, e.ID)
}

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NotFound constructs a NotFoundError for the given entity and identifier.
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// DuplicateKey constructs a DuplicateKeyError.
func DuplicateKey(entity, id string) error {
	return &DuplicateKeyError{Entity: entity, ID: id}
}

// ReferentialConflict constructs a ReferentialConflictError.
func ReferentialConflict(entity, id string) error {
	return &ReferentialConflictError{Entity: entity, ID: id}
}

// Validation constructs a ValidationError.
func Validation(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// StatusForError maps domain error kinds to HTTP status codes. Anything
// not recognized is a server-side failure and maps to 500.
func StatusForError(err error) int {
	var (
		nf  *NotFoundError
		dup *DuplicateKeyError
		ref *ReferentialConflictError
		val *ValidationError
	)
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &dup):
		return http.StatusConflict
	case errors.As(err, &ref):
		return http.StatusConflict
	case errors.As(err, &val):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
