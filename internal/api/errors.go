package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nkarpov/socialite-api/internal/store"
)

// MapErrorToStatusCode maps store errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsConflictError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, store.ErrPostNotFound):
		return "post not found"
	case errors.Is(err, store.ErrLikeNotFound):
		return "like not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "comment not found"
	case errors.Is(err, store.ErrFollowerNotFound):
		return "follower not found"
	case errors.Is(err, store.ErrHashtagNotFound):
		return "hashtag not found"
	case store.IsNotFoundError(err):
		return "record not found"

	case store.IsConflictError(err):
		return "record already exists"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError reduces a validator error to a user-facing
// message naming the first failed field, without echoing input values.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt", "gte", "lt", "lte":
		return "out of range"
	default:
		return "validation failed"
	}
}
