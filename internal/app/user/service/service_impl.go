package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yaskovbs/My-Second-Project/internal/adapters/transport/http/dto"
	"github.com/yaskovbs/My-Second-Project/internal/app/auth/password"
	jwtdomain "github.com/yaskovbs/My-Second-Project/internal/domain/auth/jwt"
	customErrors "github.com/yaskovbs/My-Second-Project/internal/domain/user/errors"
	"github.com/yaskovbs/My-Second-Project/internal/domain/user/model"
	"github.com/yaskovbs/My-Second-Project/internal/domain/user/repo"
)

type userService struct {
	userRepo repo.UserRepo
	tokens   jwtdomain.TokenService
	v        *validator.Validate
}

func New(ur repo.UserRepo, ts jwtdomain.TokenService, v *validator.Validate) Service {
	return &userService{userRepo: ur, tokens: ts, v: v}
}

func (s *userService) Register(ctx context.Context, in dto.SignupDTO) (model.User, string, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)

	if err := s.v.Struct(in); err != nil {
		return model.User{}, "", toValidationError(err)
	}

	passwordHash, err := password.Hash(in.Password)
	if err != nil {
		return model.User{}, "", err
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
	}
	if _, err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, "", customErrors.ErrAlreadyExists
		}
		return model.User{}, "", customErrors.WrapInternal(err, "Register")
	}

	token, _, err := s.tokens.Generate(user.ID)
	if err != nil {
		return model.User{}, "", customErrors.WrapInternal(err, "GenerateToken")
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, in dto.SigninDTO) (model.User, string, error) {
	in.Email = normalizeEmail(in.Email)

	if err := s.v.Struct(in); err != nil {
		return model.User{}, "", toValidationError(err)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// Same answer as a wrong password so account existence does not leak.
		return model.User{}, "", customErrors.ErrInvalidCredentials
	case err != nil:
		return model.User{}, "", customErrors.WrapInternal(err, "Login")
	}

	ok, err := password.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return model.User{}, "", customErrors.WrapInternal(err, "Login")
	}
	if !ok {
		return model.User{}, "", customErrors.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Generate(user.ID)
	if err != nil {
		return model.User{}, "", customErrors.WrapInternal(err, "GenerateToken")
	}

	return user, token, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "List")
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.ErrNotFound
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "Get")
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateDTO) (model.User, error) {
	if in.Username != nil {
		trimmed := strings.TrimSpace(*in.Username)
		in.Username = &trimmed
	}
	if in.Email != nil {
		normalized := normalizeEmail(*in.Email)
		in.Email = &normalized
	}

	if err := s.v.Struct(in); err != nil {
		return model.User{}, toValidationError(err)
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.ErrNotFound
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "Update")
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return model.User{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		return model.User{}, customErrors.WrapInternal(err, "Update")
	}

	return user, nil
}

// Delete removes the record by id. A missing record is not an error:
// delete is idempotent and answers the same either way.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.userRepo.DeleteUser(ctx, id)
	if err != nil && !errors.Is(err, customErrors.ErrNotFound) {
		return customErrors.WrapInternal(err, "Delete")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
