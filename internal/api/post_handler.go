package api

import (
	"log/slog"

	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/store"
)

// CreatePostRequest is the payload for POST /posts. The owning user id is
// coerced from a decimal string or a JSON number.
type CreatePostRequest struct {
	UserID  domain.ID `json:"user_id" validate:"required,gt=0"`
	Content string    `json:"content" validate:"required,max=4096"`
}

// UpdatePostRequest is the payload for PUT /posts/{id}.
type UpdatePostRequest struct {
	Content *string `json:"content" validate:"omitempty,max=4096"`
}

// PostHandler is the CRUD+search handler for posts.
type PostHandler = Resource[domain.Post, CreatePostRequest, UpdatePostRequest]

// NewPostHandler creates the posts resource.
func NewPostHandler(s store.EntityStore[domain.Post], logger *slog.Logger) *PostHandler {
	return NewResource(ResourceConfig[domain.Post, CreatePostRequest, UpdatePostRequest]{
		Name:       "post",
		Store:      s,
		Logger:     logger,
		FilterKeys: []string{"content"},
		Filter: func(values map[string]string) store.Filter {
			var f store.PostFilter
			if v, ok := values["content"]; ok {
				f.Content = &v
			}
			return f
		},
		NewEntity: func(req *CreatePostRequest) (*domain.Post, error) {
			return &domain.Post{
				UserID:  req.UserID,
				Content: req.Content,
			}, nil
		},
		Changes: func(req *UpdatePostRequest) (map[string]any, error) {
			changes := map[string]any{}
			if req.Content != nil {
				changes["content"] = *req.Content
			}
			return changes, nil
		},
	})
}
