// Package repository declares the persistence gateway consumed by the use cases.
package repository

import (
	"context"
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/integrity"
	"pocketratings/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repository finders and writers.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrDuplicateKey reports a unique constraint violation.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStillReferenced reports a foreign key violation, e.g. hard-deleting a row that soft-deleted rows still reference.
	ErrStillReferenced = errors.New("row is still referenced")
)

// Deleter removes rows by id. Both methods report the number of affected rows.
type Deleter interface {
	// SoftDelete stamps deleted_at on an active row only: UPDATE .. WHERE id = ? AND deleted_at IS NULL.
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	// HardDelete physically removes the row whatever its status.
	HardDelete(ctx context.Context, id uuid.UUID) (int64, error)
}

// LockMode selects the row lock taken by IntegrityGateway.LockRow.
type LockMode int

const (
	LockNone LockMode = iota
	// LockShare keeps a referenced row from being deleted until the transaction ends.
	LockShare
	// LockUpdate serializes deletes and writes on the row.
	LockUpdate
)

// IntegrityGateway answers the existence and dependency questions of the integrity rules.
type IntegrityGateway interface {
	integrity.DependencyCounter

	// LockRow locks the row of kind with id and reports whether it exists.
	// With activeOnly a soft-deleted row counts as missing.
	LockRow(ctx context.Context, kind entity.Kind, id uuid.UUID, mode LockMode, activeOnly bool) (bool, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Deleter
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]*entity.Category, error)
	// FindChildren returns active direct children; a nil parent selects the roots.
	FindChildren(ctx context.Context, parentID *uuid.UUID) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
}

// ProductRepository persists products.
type ProductRepository interface {
	Deleter
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]*entity.Product, error)
	// ListWithCategory returns every product, deleted ones included, joined with its category name.
	ListWithCategory(ctx context.Context) ([]entity.ProductListing, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
}

// LocationRepository persists locations.
type LocationRepository interface {
	Deleter
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]*entity.Location, error)
	Create(ctx context.Context, location *entity.Location) error
	Update(ctx context.Context, location *entity.Location) error
}

// PurchaseRepository persists purchases.
type PurchaseRepository interface {
	Deleter
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	// FindByID also returns soft-deleted rows; ownership checks on hard deletes use it.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	// Find returns purchases matching filter, newest first.
	Find(ctx context.Context, filter entity.PurchaseFilter) ([]*entity.Purchase, error)
	Create(ctx context.Context, purchase *entity.Purchase) error
	Update(ctx context.Context, purchase *entity.Purchase) error
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	Deleter
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	// FindByID also returns soft-deleted rows; ownership checks on hard deletes use it.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	// ListWithRelations returns every review, deleted ones included, with product and author names, newest first.
	ListWithRelations(ctx context.Context) ([]entity.ReviewListing, error)
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
}

// UserRepository persists users.
type UserRepository interface {
	Deleter
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
