package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pocketratings/internal/delivery/context"
	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/errors"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type purchaseService struct {
	txManager    repository.TransactionManager
	purchaseRepo repository.PurchaseRepository
	logger       *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PurchaseRepo repository.PurchaseRepository
	Logger       *slog.Logger
}

// NewPurchaseService creates a new purchase service instance
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		txManager:    params.TxManager,
		purchaseRepo: params.PurchaseRepo,
		logger:       params.Logger,
	}
}

func (s *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *purchaseService) ListPurchases(ctx context.Context, filter entity.PurchaseFilter) ([]*entity.Purchase, error) {
	purchases, err := s.purchaseRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(translate(err), "failed to list purchases")
	}

	return purchases, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	return purchase, nil
}

// CreatePurchase records a purchase of an active product at an active location by an active user.
func (s *purchaseService) CreatePurchase(ctx context.Context, userID uuid.UUID, input *usecase.CreatePurchaseInput) (*entity.Purchase, error) {
	price, err := entity.ParsePrice(input.Price)
	if err != nil {
		return nil, translate(err)
	}
	purchasedAt := withDefault(input.PurchasedAt, timeNow())

	purchase, err := entity.NewPurchase(entity.PurchaseParams{
		ID:          uuid.New(),
		UserID:      userID,
		ProductID:   input.ProductID,
		LocationID:  input.LocationID,
		Quantity:    input.Quantity,
		Price:       price,
		PurchasedAt: purchasedAt.UTC().Truncate(time.Second),
	})
	if err != nil {
		return nil, translate(err)
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := s.requireReferences(ctx, repos.NewIntegrityGateway(), purchase, nil); err != nil {
			return err
		}

		return repos.NewPurchaseRepository().Create(ctx, purchase)
	})
	if err != nil {
		return nil, translate(err)
	}

	s.log(ctx).Info("Purchase recorded",
		slog.String("purchaseID", purchase.ID().String()),
		slog.String("userID", userID.String()),
		slog.String("productID", purchase.ProductID().String()),
	)

	return purchase, nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdatePurchaseInput) (*entity.Purchase, error) {
	var updated *entity.Purchase
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		gw := repos.NewIntegrityGateway()
		purchaseRepo := repos.NewPurchaseRepository()

		if err := lockForWrite(ctx, gw, entity.KindPurchase, id); err != nil {
			return err
		}
		current, err := purchaseRepo.FindActiveByID(ctx, id)
		if err != nil {
			return err
		}
		if current.UserID() != userID {
			return domainerrors.ErrForbidden
		}

		params := current.Params()
		params.ProductID = withDefault(input.ProductID, params.ProductID)
		params.LocationID = withDefault(input.LocationID, params.LocationID)
		params.Quantity = withDefault(input.Quantity, params.Quantity)
		if input.PurchasedAt != nil {
			params.PurchasedAt = input.PurchasedAt.UTC().Truncate(time.Second)
		}
		if input.Price != nil {
			price, err := entity.ParsePrice(*input.Price)
			if err != nil {
				return err
			}
			params.Price = price
		}

		next, err := entity.NewPurchase(params)
		if err != nil {
			return err
		}
		if err := s.requireReferences(ctx, gw, next, current); err != nil {
			return err
		}
		if err := purchaseRepo.Update(ctx, next); err != nil {
			return err
		}
		updated = next

		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	s.log(ctx).Info("Purchase updated", slog.String("purchaseID", id.String()))

	return updated, nil
}

// DeletePurchase removes a purchase owned by userID. Purchases have no dependents.
func (s *purchaseService) DeletePurchase(ctx context.Context, userID, id uuid.UUID, mode usecase.DeleteMode) error {
	err := executeDelete(ctx, s.txManager, deletion{
		kind:   entity.KindPurchase,
		id:     id,
		mode:   mode,
		target: func(repos repository.RepositoryFactory) repository.Deleter { return repos.NewPurchaseRepository() },
		authorize: func(ctx context.Context, repos repository.RepositoryFactory) error {
			purchase, err := repos.NewPurchaseRepository().FindByID(ctx, id)
			if err != nil {
				return err
			}
			if purchase.UserID() != userID {
				return domainerrors.ErrForbidden
			}

			return nil
		},
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Purchase deleted", slog.String("purchaseID", id.String()), slog.String("mode", mode.String()))

	return nil
}

// requireReferences share-locks the user, product and location of next.
// References unchanged from current are not checked again.
func (s *purchaseService) requireReferences(ctx context.Context, gw repository.IntegrityGateway, next, current *entity.Purchase) error {
	if current == nil {
		if err := requireActive(ctx, gw, entity.KindUser, next.UserID(), domainerrors.ErrUserNotFound); err != nil {
			return err
		}
	}
	if current == nil || current.ProductID() != next.ProductID() {
		if err := requireActive(ctx, gw, entity.KindProduct, next.ProductID(), domainerrors.ErrProductNotFound); err != nil {
			return err
		}
	}
	if current == nil || current.LocationID() != next.LocationID() {
		if err := requireActive(ctx, gw, entity.KindLocation, next.LocationID(), domainerrors.ErrLocationNotFound); err != nil {
			return err
		}
	}

	return nil
}
