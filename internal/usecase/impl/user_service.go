package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pocketratings/internal/delivery/context"
	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/domain/service"
	"pocketratings/internal/errors"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	reviewCache  service.ListCache[entity.ReviewListing]
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	ReviewCache  service.ListCache[entity.ReviewListing]
	Logger       *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		reviewCache:  params.ReviewCache,
		logger:       params.Logger,
	}
}

func (s *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterUser creates a user with a hashed password.
// Emails are unique across all users, soft-deleted ones included.
func (s *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if !entity.ValidEmail(email) {
		return nil, domainerrors.NewValidationError(&entity.InvalidEmailError{Email: input.Email})
	}

	existing, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if existing != nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := timeNow()
	user, err := entity.NewUser(entity.UserParams{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, translate(err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, translate(err)
	}

	s.log(ctx).Info("User registered", slog.String("userID", user.ID().String()))

	return user, nil
}

// Login verifies the credentials of an active user and issues a token pair.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash()) {
		s.log(ctx).Warn("Login rejected", slog.String("userID", user.ID().String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := s.tokenService.GenerateTokens(user.ID())
	if err != nil {
		s.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed
	}

	return &usecase.LoginOutput{Tokens: tokens, User: user}, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, includeDeleted bool) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx, includeDeleted)
	if err != nil {
		return nil, errors.Wrap(translate(err), "failed to list users")
	}

	return users, nil
}

// DeleteUser removes a user. A hard delete fails while purchases or reviews still reference the row.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID, mode usecase.DeleteMode) error {
	err := executeDelete(ctx, s.txManager, deletion{
		kind:   entity.KindUser,
		id:     id,
		mode:   mode,
		target: func(repos repository.RepositoryFactory) repository.Deleter { return repos.NewUserRepository() },
	})
	if err != nil {
		return err
	}

	s.reviewCache.Invalidate()
	s.log(ctx).Info("User deleted", slog.String("userID", id.String()), slog.String("mode", mode.String()))

	return nil
}
