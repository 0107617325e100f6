package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nkarpov/socialite-api/internal/api/shared"
	"github.com/nkarpov/socialite-api/internal/store"
)

// ResourceConfig carries the per-entity pieces of a Resource: the store,
// the request-to-entity translations, and the filterable query keys.
// C is the create request type, U the update request type; both carry
// validate tags and are checked before their translation runs.
type ResourceConfig[T any, C any, U any] struct {
	// Name is the singular entity name used in messages and logs.
	Name string

	// Store is the persistence backend for the entity.
	Store store.EntityStore[T]

	// FilterKeys lists the query parameters accepted as text filters on
	// the list endpoint. Empty means the entity is not filterable.
	FilterKeys []string

	// Filter builds the typed filter from the surviving filter values.
	// Called only when at least one filter value survived re-validation;
	// may be nil for entities without filters.
	Filter func(values map[string]string) store.Filter

	// NewEntity translates a validated create request into the entity to
	// persist. Returning an error fails the request with 500 unless the
	// error is a *BadRequestError.
	NewEntity func(req *C) (*T, error)

	// Changes translates a validated update request into the column
	// changes to apply. Absent (nil) request fields must be omitted.
	Changes func(req *U) (map[string]any, error)

	Logger *slog.Logger
}

// Resource is a six-operation CRUD+search handler for one entity. All
// entities share this implementation; the differences live entirely in
// the ResourceConfig.
type Resource[T any, C any, U any] struct {
	cfg    ResourceConfig[T, C, U]
	logger *slog.Logger
}

// NewResource creates the handler for one entity.
func NewResource[T any, C any, U any](cfg ResourceConfig[T, C, U]) *Resource[T, C, U] {
	if cfg.Logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Resource")
	}
	if cfg.Store == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("store cannot be nil for Resource")
	}

	return &Resource[T, C, U]{
		cfg:    cfg,
		logger: cfg.Logger.With(slog.String("component", cfg.Name+"_handler")),
	}
}

// Routes mounts the six operations on a fresh sub-router.
func (h *Resource[T, C, U]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/search", h.Search)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// List handles GET / requests. Malformed pagination or filter input never
// fails the request; the query processor degrades it to defaults.
func (h *Resource[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	page, filterValues := shared.ParseListQuery(r.URL.Query(), h.cfg.FilterKeys, h.logger)

	var filter store.Filter
	if len(filterValues) > 0 && h.cfg.Filter != nil {
		filter = h.cfg.Filter(filterValues)
	}

	rows, total, err := h.store().List(r.Context(), filter, store.Page{Skip: page.Skip, Take: page.Take})
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.NewListEnvelope(rows, total, page))
}

// Get handles GET /{id} requests.
func (h *Resource[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	row, err := h.store().GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, row)
}

// Create handles POST / requests.
func (h *Resource[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("invalid request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	entity, err := h.cfg.NewEntity(&req)
	if err != nil {
		var badReq *BadRequestError
		if errors.As(err, &badReq) {
			shared.RespondWithError(w, r, http.StatusBadRequest, badReq.Message)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			fmt.Sprintf("failed to create %s", h.cfg.Name), err)
		return
	}

	if err := h.store().Create(r.Context(), entity); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, entity)
}

// Update handles PUT /{id} requests.
func (h *Resource[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req U
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("invalid request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	changes, err := h.cfg.Changes(&req)
	if err != nil {
		var badReq *BadRequestError
		if errors.As(err, &badReq) {
			shared.RespondWithError(w, r, http.StatusBadRequest, badReq.Message)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			fmt.Sprintf("failed to update %s", h.cfg.Name), err)
		return
	}

	row, err := h.store().Update(r.Context(), id, changes)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, row)
}

// Delete handles DELETE /{id} requests.
func (h *Resource[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store().Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Success: true,
		Message: fmt.Sprintf("%s deleted", h.cfg.Name),
	})
}

// Search handles GET /search requests. The query parameter is required;
// pagination is clamped rather than defaulted (unlike List).
func (h *Resource[T, C, U]) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "query parameter is required")
		return
	}

	page := shared.ParseSearchPage(r.URL.Query())

	rows, total, err := h.store().Search(r.Context(), query, store.Page{Skip: page.Skip, Take: page.Take})
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.NewListEnvelope(rows, total, page))
}

// pathID extracts and parses the {id} path parameter, responding with 400
// on malformed input.
func (h *Resource[T, C, U]) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Debug("invalid id in path", "id", raw)
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Invalid %s ID format", h.cfg.Name))
		return 0, false
	}
	return id, true
}

// respondStoreError maps a store error onto the wire: 404 for missing
// rows, 409 with the offending fields for uniqueness violations, 500
// otherwise.
func (h *Resource[T, C, U]) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var conflict *store.ConflictError
	if errors.As(err, &conflict) {
		shared.RespondWithConflict(w, r, conflict.Fields)
		return
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

func (h *Resource[T, C, U]) store() store.EntityStore[T] {
	return h.cfg.Store
}

// BadRequestError lets a request translation reject input that passed
// struct validation but is still unusable.
type BadRequestError struct {
	Message string
}

// Error implements the error interface.
func (e *BadRequestError) Error() string {
	return e.Message
}
