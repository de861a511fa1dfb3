package impl

import (
	"context"
	"log/slog"

	deliverycontext "pocketratings/internal/delivery/context"
	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/errors"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *locationService) ListLocations(ctx context.Context, includeDeleted bool) ([]*entity.Location, error) {
	locations, err := s.locationRepo.FindAll(ctx, includeDeleted)
	if err != nil {
		return nil, errors.Wrap(translate(err), "failed to list locations")
	}

	return locations, nil
}

func (s *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	return location, nil
}

func (s *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	location, err := entity.NewLocation(entity.LocationParams{ID: uuid.New(), Name: input.Name})
	if err != nil {
		return nil, translate(err)
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, translate(err)
	}

	s.log(ctx).Info("Location created", slog.String("locationID", location.ID().String()))

	return location, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, id uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	var updated *entity.Location
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		locationRepo := repos.NewLocationRepository()
		if err := lockForWrite(ctx, repos.NewIntegrityGateway(), entity.KindLocation, id); err != nil {
			return err
		}
		current, err := locationRepo.FindActiveByID(ctx, id)
		if err != nil {
			return err
		}

		params := current.Params()
		params.Name = withDefault(input.Name, params.Name)
		next, err := entity.NewLocation(params)
		if err != nil {
			return err
		}
		if err := locationRepo.Update(ctx, next); err != nil {
			return err
		}
		updated = next

		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	return updated, nil
}

// DeleteLocation removes a location that no purchase references.
func (s *locationService) DeleteLocation(ctx context.Context, id uuid.UUID, mode usecase.DeleteMode) error {
	err := executeDelete(ctx, s.txManager, deletion{
		kind:   entity.KindLocation,
		id:     id,
		mode:   mode,
		target: func(repos repository.RepositoryFactory) repository.Deleter { return repos.NewLocationRepository() },
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Location deleted", slog.String("locationID", id.String()), slog.String("mode", mode.String()))

	return nil
}
