package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/nkarpov/socialite-api/internal/store"
)

// PostgreSQL error codes relevant to error translation.
const (
	// uniqueViolationCode is the PostgreSQL error code for unique
	// constraint violations
	uniqueViolationCode = "23505"
)

// mapError translates ORM and driver errors into the store error
// taxonomy: a missing row becomes the entity's not-found sentinel, a
// uniqueness violation becomes a *ConflictError naming the violated
// fields. Anything else is wrapped with the failing operation for
// context and surfaces to the handler layer as an internal error.
func (s *EntityStore[T]) mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.meta.NotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &store.ConflictError{
			Fields: s.meta.conflictFields(pgErr.ConstraintName, pgErr.Error()),
		}
	}

	// SQLite (used by the test suite) reports unique violations only
	// through the error text, as does gorm's dialect-generic sentinel.
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &store.ConflictError{
			Fields: s.meta.conflictFields("", err.Error()),
		}
	}

	s.logger.Error("storage operation failed",
		"operation", op,
		"entity", s.meta.Name,
		"error", err)
	return fmt.Errorf("%s %s failed: %w", op, s.meta.Name, err)
}
