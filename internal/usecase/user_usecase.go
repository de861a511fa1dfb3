package usecase

import (
	"context"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/service"

	"github.com/google/uuid"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens service.TokenPair
	User   *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, includeDeleted bool) ([]*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID, mode DeleteMode) error
}
