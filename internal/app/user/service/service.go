package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/yaskovbs/My-Second-Project/internal/adapters/transport/http/dto"
	"github.com/yaskovbs/My-Second-Project/internal/domain/user/model"
)

// Service implements the user-account operations. Register and Login
// return the persisted user together with a freshly issued bearer token.
type Service interface {
	Register(ctx context.Context, in dto.SignupDTO) (model.User, string, error)
	Login(ctx context.Context, in dto.SigninDTO) (model.User, string, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, in dto.UpdateDTO) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
