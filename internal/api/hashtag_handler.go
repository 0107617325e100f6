package api

import (
	"log/slog"

	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/store"
)

// CreateHashtagRequest is the payload for POST /hashtags.
type CreateHashtagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// UpdateHashtagRequest is the payload for PUT /hashtags/{id}.
type UpdateHashtagRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=64"`
}

// HashtagHandler is the CRUD+search handler for hashtags.
type HashtagHandler = Resource[domain.Hashtag, CreateHashtagRequest, UpdateHashtagRequest]

// NewHashtagHandler creates the hashtags resource.
func NewHashtagHandler(s store.EntityStore[domain.Hashtag], logger *slog.Logger) *HashtagHandler {
	return NewResource(ResourceConfig[domain.Hashtag, CreateHashtagRequest, UpdateHashtagRequest]{
		Name:       "hashtag",
		Store:      s,
		Logger:     logger,
		FilterKeys: []string{"name"},
		Filter: func(values map[string]string) store.Filter {
			var f store.HashtagFilter
			if v, ok := values["name"]; ok {
				f.Name = &v
			}
			return f
		},
		NewEntity: func(req *CreateHashtagRequest) (*domain.Hashtag, error) {
			return &domain.Hashtag{Name: req.Name}, nil
		},
		Changes: func(req *UpdateHashtagRequest) (map[string]any, error) {
			changes := map[string]any{}
			if req.Name != nil {
				changes["name"] = *req.Name
			}
			return changes, nil
		},
	})
}
