package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/yaskovbs/My-Second-Project/internal/domain/user/model"
)

// UserRepo is the persistence port for user records. Implementations map
// store-level failures onto the domain error taxonomy: uniqueness conflicts
// become ErrAlreadyExists, missing rows become ErrNotFound.
type UserRepo interface {
	CreateUser(ctx context.Context, user model.User) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user model.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
