package api

import (
	"log/slog"

	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/store"
)

// CreateLikeRequest is the payload for POST /likes. Both foreign keys are
// coerced from decimal strings or JSON numbers.
type CreateLikeRequest struct {
	UserID domain.ID `json:"user_id" validate:"required,gt=0"`
	PostID domain.ID `json:"post_id" validate:"required,gt=0"`
}

// UpdateLikeRequest is the payload for PUT /likes/{id}. Repointing a like
// at a different user or post is allowed, subject to the (user, post)
// uniqueness constraint.
type UpdateLikeRequest struct {
	UserID *domain.ID `json:"user_id" validate:"omitempty,gt=0"`
	PostID *domain.ID `json:"post_id" validate:"omitempty,gt=0"`
}

// LikeHandler is the CRUD+search handler for likes.
type LikeHandler = Resource[domain.Like, CreateLikeRequest, UpdateLikeRequest]

// NewLikeHandler creates the likes resource. Likes carry no searchable
// text column: the search endpoint still requires a query parameter but
// applies no text filter, returning the paginated window over all rows.
func NewLikeHandler(s store.EntityStore[domain.Like], logger *slog.Logger) *LikeHandler {
	return NewResource(ResourceConfig[domain.Like, CreateLikeRequest, UpdateLikeRequest]{
		Name:   "like",
		Store:  s,
		Logger: logger,
		NewEntity: func(req *CreateLikeRequest) (*domain.Like, error) {
			return &domain.Like{
				UserID: req.UserID,
				PostID: req.PostID,
			}, nil
		},
		Changes: func(req *UpdateLikeRequest) (map[string]any, error) {
			changes := map[string]any{}
			if req.UserID != nil {
				changes["user_id"] = req.UserID.Int64()
			}
			if req.PostID != nil {
				changes["post_id"] = req.PostID.Int64()
			}
			return changes, nil
		},
	})
}
