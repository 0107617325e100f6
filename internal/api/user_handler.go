package api

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/store"
)

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateUserRequest is the payload for PUT /users/{id}. Absent fields are
// left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=32"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// UserHandler is the CRUD+search handler for users.
type UserHandler = Resource[domain.User, CreateUserRequest, UpdateUserRequest]

// NewUserHandler creates the users resource. Plaintext passwords are
// hashed with bcrypt before they reach the store; the hash itself never
// serializes to JSON.
func NewUserHandler(s store.EntityStore[domain.User], logger *slog.Logger) *UserHandler {
	return NewResource(ResourceConfig[domain.User, CreateUserRequest, UpdateUserRequest]{
		Name:       "user",
		Store:      s,
		Logger:     logger,
		FilterKeys: []string{"username", "email"},
		Filter: func(values map[string]string) store.Filter {
			var f store.UserFilter
			if v, ok := values["username"]; ok {
				f.Username = &v
			}
			if v, ok := values["email"]; ok {
				f.Email = &v
			}
			return f
		},
		NewEntity: func(req *CreateUserRequest) (*domain.User, error) {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password: %w", err)
			}
			return &domain.User{
				Username:       req.Username,
				Email:          req.Email,
				HashedPassword: string(hash),
			}, nil
		},
		Changes: func(req *UpdateUserRequest) (map[string]any, error) {
			changes := map[string]any{}
			if req.Username != nil {
				changes["username"] = *req.Username
			}
			if req.Email != nil {
				changes["email"] = *req.Email
			}
			if req.Password != nil {
				hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
				if err != nil {
					return nil, fmt.Errorf("failed to hash password: %w", err)
				}
				changes["hashed_password"] = string(hash)
			}
			return changes, nil
		},
	})
}
