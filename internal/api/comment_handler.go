package api

import (
	"log/slog"

	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/store"
)

// CreateCommentRequest is the payload for POST /comments.
type CreateCommentRequest struct {
	UserID  domain.ID `json:"user_id" validate:"required,gt=0"`
	PostID  domain.ID `json:"post_id" validate:"required,gt=0"`
	Content string    `json:"content" validate:"required,max=2048"`
}

// UpdateCommentRequest is the payload for PUT /comments/{id}.
type UpdateCommentRequest struct {
	Content *string `json:"content" validate:"omitempty,max=2048"`
}

// CommentHandler is the CRUD+search handler for comments.
type CommentHandler = Resource[domain.Comment, CreateCommentRequest, UpdateCommentRequest]

// NewCommentHandler creates the comments resource.
func NewCommentHandler(s store.EntityStore[domain.Comment], logger *slog.Logger) *CommentHandler {
	return NewResource(ResourceConfig[domain.Comment, CreateCommentRequest, UpdateCommentRequest]{
		Name:       "comment",
		Store:      s,
		Logger:     logger,
		FilterKeys: []string{"content"},
		Filter: func(values map[string]string) store.Filter {
			var f store.CommentFilter
			if v, ok := values["content"]; ok {
				f.Content = &v
			}
			return f
		},
		NewEntity: func(req *CreateCommentRequest) (*domain.Comment, error) {
			return &domain.Comment{
				UserID:  req.UserID,
				PostID:  req.PostID,
				Content: req.Content,
			}, nil
		},
		Changes: func(req *UpdateCommentRequest) (map[string]any, error) {
			changes := map[string]any{}
			if req.Content != nil {
				changes["content"] = *req.Content
			}
			return changes, nil
		},
	})
}
