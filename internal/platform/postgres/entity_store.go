package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/nkarpov/socialite-api/internal/store"
)

// EntityStore is the gorm-backed implementation of store.EntityStore for
// a single entity type. All six entities share this implementation and
// differ only in their Meta.
type EntityStore[T any] struct {
	db     *gorm.DB
	meta   Meta
	logger *slog.Logger
}

// NewEntityStore creates an EntityStore for the entity described by meta.
func NewEntityStore[T any](db *gorm.DB, meta Meta, logger *slog.Logger) *EntityStore[T] {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EntityStore")
	}

	return &EntityStore[T]{
		db:     db,
		meta:   meta,
		logger: logger.With(slog.String("component", meta.Name+"_store")),
	}
}

// List implements store.EntityStore. The row fetch and the count run
// concurrently; both see the same filter.
func (s *EntityStore[T]) List(
	ctx context.Context,
	filter store.Filter,
	page store.Page,
) ([]T, int64, error) {
	var (
		rows  []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := applyFilter(s.db.WithContext(gctx).Model(new(T)), filter)
		return q.Order("id").Offset(page.Skip).Limit(page.Take).Find(&rows).Error
	})
	g.Go(func() error {
		q := applyFilter(s.db.WithContext(gctx).Model(new(T)), filter)
		return q.Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, s.mapError("list", err)
	}

	if rows == nil {
		rows = []T{}
	}
	return rows, total, nil
}

// GetByID implements store.EntityStore.
func (s *EntityStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var row T
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, s.mapError("get", err)
	}
	return &row, nil
}

// Create implements store.EntityStore. The entity's identifier and
// creation timestamp are populated by the database.
func (s *EntityStore[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return s.mapError("create", err)
	}
	return nil
}

// Update implements store.EntityStore. An empty change set degenerates to
// an existence check so a missing row still reports not-found.
func (s *EntityStore[T]) Update(
	ctx context.Context,
	id int64,
	changes map[string]any,
) (*T, error) {
	if len(changes) > 0 {
		res := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, s.mapError("update", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, s.meta.NotFound
		}
	}

	return s.GetByID(ctx, id)
}

// Delete implements store.EntityStore.
func (s *EntityStore[T]) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return s.mapError("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.meta.NotFound
	}
	return nil
}

// Search implements store.EntityStore. Matching is case-insensitive on
// the entity's designated text column: prefix or substring per the Meta.
// Entities without a search column return the unfiltered window.
func (s *EntityStore[T]) Search(
	ctx context.Context,
	query string,
	page store.Page,
) ([]T, int64, error) {
	match := func(q *gorm.DB) *gorm.DB {
		if s.meta.SearchColumn == "" {
			return q
		}
		pattern := escapeLike(strings.ToLower(query)) + "%"
		if !s.meta.SearchPrefix {
			pattern = "%" + pattern
		}
		return q.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, s.meta.SearchColumn), pattern)
	}

	var (
		rows  []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := match(s.db.WithContext(gctx).Model(new(T)))
		return q.Order("id").Offset(page.Skip).Limit(page.Take).Find(&rows).Error
	})
	g.Go(func() error {
		q := match(s.db.WithContext(gctx).Model(new(T)))
		return q.Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, s.mapError("search", err)
	}

	if rows == nil {
		rows = []T{}
	}
	return rows, total, nil
}

// applyFilter adds one case-insensitive substring condition per filter
// field. A nil filter matches every row.
func applyFilter(q *gorm.DB, filter store.Filter) *gorm.DB {
	if filter == nil {
		return q
	}
	for _, c := range filter.Conditions() {
		pattern := "%" + escapeLike(strings.ToLower(c.Value)) + "%"
		q = q.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, c.Column), pattern)
	}
	return q
}

// escapeLike neutralizes LIKE wildcards in user-supplied match values.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
