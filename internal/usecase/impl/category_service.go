package impl

import (
	"context"
	"log/slog"

	deliverycontext "pocketratings/internal/delivery/context"
	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/hierarchy"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/domain/service"
	"pocketratings/internal/errors"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	productCache service.ListCache[entity.ProductListing]
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	ProductCache service.ListCache[entity.ProductListing]
	Logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		productCache: params.ProductCache,
		logger:       params.Logger,
	}
}

func (s *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetTree returns the category subtree selected by query.
// Depth one without deleted rows is answered straight from the children query.
func (s *categoryService) GetTree(ctx context.Context, query usecase.CategoryTreeQuery) (*hierarchy.Node, error) {
	if query.Depth == 1 && !query.IncludeDeleted {
		return s.shallowTree(ctx, query.ParentID)
	}

	flat, err := s.categoryRepo.FindAll(ctx, true)
	if err != nil {
		return nil, errors.Wrap(translate(err), "failed to list categories")
	}

	if orphans := hierarchy.Orphans(flat); len(orphans) > 0 {
		ids := make([]string, 0, len(orphans))
		for _, c := range orphans {
			ids = append(ids, c.ID().String())
		}
		s.log(ctx).Warn("Categories reference a missing parent", slog.Any("categoryIDs", ids))
	}

	var root *entity.Category
	if query.ParentID != nil {
		root = findCategory(flat, *query.ParentID)
		if root == nil || (!root.IsActive() && !query.IncludeDeleted) {
			return nil, domainerrors.ErrCategoryNotFound
		}
	}

	opts := []hierarchy.Option{hierarchy.WithDepth(query.Depth)}
	if !query.IncludeDeleted {
		opts = append(opts, hierarchy.ActiveOnly())
	}

	return hierarchy.Build(flat, root, opts...), nil
}

func (s *categoryService) shallowTree(ctx context.Context, parentID *uuid.UUID) (*hierarchy.Node, error) {
	var root *entity.Category
	if parentID != nil {
		parent, err := s.categoryRepo.FindActiveByID(ctx, *parentID)
		if err != nil {
			return nil, translate(err)
		}
		root = parent
	}

	children, err := s.categoryRepo.FindChildren(ctx, parentID)
	if err != nil {
		return nil, errors.Wrap(translate(err), "failed to list child categories")
	}

	return &hierarchy.Node{Category: root, Children: hierarchy.Children(children)}, nil
}

func findCategory(flat []*entity.Category, id uuid.UUID) *entity.Category {
	for _, c := range flat {
		if c.ID() == id {
			return c
		}
	}

	return nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	return category, nil
}

// CreateCategory validates the input and stores a new category under an active parent.
func (s *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	now := timeNow()
	category, err := entity.NewCategory(entity.CategoryParams{
		ID:        uuid.New(),
		ParentID:  input.ParentID,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, translate(err)
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if category.ParentID() != nil {
			gw := repos.NewIntegrityGateway()
			if err := requireActive(ctx, gw, entity.KindCategory, *category.ParentID(), domainerrors.ErrParentCategoryNotFound); err != nil {
				return err
			}
		}

		return repos.NewCategoryRepository().Create(ctx, category)
	})
	if err != nil {
		return nil, translate(err)
	}

	s.productCache.Invalidate()
	s.log(ctx).Info("Category created", slog.String("categoryID", category.ID().String()))

	return category, nil
}

// UpdateCategory renames or re-parents a category. Moving a category below itself is rejected.
func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	var updated *entity.Category
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		gw := repos.NewIntegrityGateway()
		categoryRepo := repos.NewCategoryRepository()

		if err := lockForWrite(ctx, gw, entity.KindCategory, id); err != nil {
			return err
		}
		current, err := categoryRepo.FindActiveByID(ctx, id)
		if err != nil {
			return err
		}

		params := current.Params()
		params.Name = withDefault(input.Name, params.Name)
		params.UpdatedAt = timeNow()

		switch {
		case input.MoveToRoot:
			params.ParentID = nil
		case input.ParentID != nil && !current.HasParent(*input.ParentID):
			if err := s.checkReparent(ctx, repos, id, *input.ParentID); err != nil {
				return err
			}
			params.ParentID = input.ParentID
		}

		next, err := entity.NewCategory(params)
		if err != nil {
			return err
		}
		if err := categoryRepo.Update(ctx, next); err != nil {
			return err
		}
		updated = next

		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	s.productCache.Invalidate()
	s.log(ctx).Info("Category updated", slog.String("categoryID", id.String()))

	return updated, nil
}

func (s *categoryService) checkReparent(ctx context.Context, repos repository.RepositoryFactory, id, parentID uuid.UUID) error {
	if parentID == id {
		return domainerrors.ErrCategoryCycle
	}
	if err := requireActive(ctx, repos.NewIntegrityGateway(), entity.KindCategory, parentID, domainerrors.ErrParentCategoryNotFound); err != nil {
		return err
	}

	flat, err := repos.NewCategoryRepository().FindAll(ctx, true)
	if err != nil {
		return err
	}
	if _, below := hierarchy.Descendants(flat, id)[parentID]; below {
		return domainerrors.ErrCategoryCycle
	}

	return nil
}

// DeleteCategory removes a category that has no active children and no active products.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID, mode usecase.DeleteMode) error {
	err := executeDelete(ctx, s.txManager, deletion{
		kind:   entity.KindCategory,
		id:     id,
		mode:   mode,
		target: func(repos repository.RepositoryFactory) repository.Deleter { return repos.NewCategoryRepository() },
	})
	if err != nil {
		s.log(ctx).Warn("Category delete rejected", slog.String("categoryID", id.String()), slog.String("mode", mode.String()), slog.Any("error", err))

		return err
	}

	s.productCache.Invalidate()
	s.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()), slog.String("mode", mode.String()))

	return nil
}
