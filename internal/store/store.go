package store

import "context"

// Page describes a pagination window in rows.
type Page struct {
	// Skip is the number of rows to pass over before the window starts.
	Skip int

	// Take is the maximum number of rows in the window.
	Take int
}

// EntityStore defines the persistence operations shared by every entity.
// Implementations must translate their storage errors to the sentinel
// errors of this package: a missing row surfaces as the entity's
// not-found error, a uniqueness violation as a *ConflictError.
type EntityStore[T any] interface {
	// List returns the rows matching the filter within the pagination
	// window, together with the total number of matching rows. The row
	// fetch and the count are issued concurrently.
	List(ctx context.Context, filter Filter, page Page) ([]T, int64, error)

	// GetByID retrieves a single entity by its identifier.
	GetByID(ctx context.Context, id int64) (*T, error)

	// Create persists a new entity, populating its identifier and
	// creation timestamp.
	Create(ctx context.Context, entity *T) error

	// Update applies the given column changes to the entity with the
	// given identifier and returns the updated row.
	Update(ctx context.Context, id int64, changes map[string]any) (*T, error)

	// Delete removes the entity with the given identifier.
	Delete(ctx context.Context, id int64) error

	// Search returns the rows whose designated text column matches the
	// query, within the pagination window, together with the total match
	// count. Entities without a searchable column return all rows.
	Search(ctx context.Context, query string, page Page) ([]T, int64, error)
}
