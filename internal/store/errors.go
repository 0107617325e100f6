package store

import (
	"errors"
	"fmt"
	"strings"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrUserNotFound, ErrPostNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when an operation would violate a uniqueness
	// constraint (e.g., a user with the same username). Implementations
	// return a *ConflictError wrapping this sentinel so callers can report
	// the offending fields.
	ErrConflict = errors.New("entity already exists")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrLikeNotFound indicates that the requested like does not exist.
	ErrLikeNotFound = fmt.Errorf("%w: like", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrFollowerNotFound indicates that the requested follower edge does not exist.
	ErrFollowerNotFound = fmt.Errorf("%w: follower", ErrNotFound)

	// ErrHashtagNotFound indicates that the requested hashtag does not exist.
	ErrHashtagNotFound = fmt.Errorf("%w: hashtag", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including the entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflictError checks if the error reports a uniqueness violation.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// ConflictError reports a uniqueness violation together with the fields
// that caused it, when the storage layer can identify them.
type ConflictError struct {
	// Fields lists the JSON field names covered by the violated constraint.
	// May be empty when the constraint could not be resolved.
	Fields []string
}

// Error implements the error interface for ConflictError.
func (e *ConflictError) Error() string {
	if len(e.Fields) == 0 {
		return ErrConflict.Error()
	}
	return fmt.Sprintf("%s: %s", ErrConflict.Error(), strings.Join(e.Fields, ", "))
}

// Unwrap returns ErrConflict so errors.Is(err, ErrConflict) holds.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
