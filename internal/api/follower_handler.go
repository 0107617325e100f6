package api

import (
	"log/slog"

	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/store"
)

// CreateFollowerRequest is the payload for POST /followers: FollowerID
// starts following FolloweeID.
type CreateFollowerRequest struct {
	FollowerID domain.ID `json:"follower_id" validate:"required,gt=0"`
	FolloweeID domain.ID `json:"followee_id" validate:"required,gt=0,nefield=FollowerID"`
}

// UpdateFollowerRequest is the payload for PUT /followers/{id}.
type UpdateFollowerRequest struct {
	FollowerID *domain.ID `json:"follower_id" validate:"omitempty,gt=0"`
	FolloweeID *domain.ID `json:"followee_id" validate:"omitempty,gt=0"`
}

// FollowerHandler is the CRUD+search handler for follower edges.
type FollowerHandler = Resource[domain.Follower, CreateFollowerRequest, UpdateFollowerRequest]

// NewFollowerHandler creates the followers resource. Follower edges carry
// no searchable text column; search behaves like the likes resource.
func NewFollowerHandler(s store.EntityStore[domain.Follower], logger *slog.Logger) *FollowerHandler {
	return NewResource(ResourceConfig[domain.Follower, CreateFollowerRequest, UpdateFollowerRequest]{
		Name:   "follower",
		Store:  s,
		Logger: logger,
		NewEntity: func(req *CreateFollowerRequest) (*domain.Follower, error) {
			return &domain.Follower{
				FollowerID: req.FollowerID,
				FolloweeID: req.FolloweeID,
			}, nil
		},
		Changes: func(req *UpdateFollowerRequest) (map[string]any, error) {
			changes := map[string]any{}
			if req.FollowerID != nil {
				changes["follower_id"] = req.FollowerID.Int64()
			}
			if req.FolloweeID != nil {
				changes["followee_id"] = req.FolloweeID.Int64()
			}
			return changes, nil
		},
	})
}
