// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/errors"

	"github.com/google/uuid"
)

// timeNow is the clock of every write. Storage keeps whole seconds, so values are truncated to match.
var timeNow = func() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

var notFoundErrors = map[error]*domainerrors.BaseError{
	repository.ErrCategoryNotFound: domainerrors.ErrCategoryNotFound,
	repository.ErrProductNotFound:  domainerrors.ErrProductNotFound,
	repository.ErrLocationNotFound: domainerrors.ErrLocationNotFound,
	repository.ErrPurchaseNotFound: domainerrors.ErrPurchaseNotFound,
	repository.ErrReviewNotFound:   domainerrors.ErrReviewNotFound,
	repository.ErrUserNotFound:     domainerrors.ErrUserNotFound,
}

// translate turns repository and entity failures into application errors.
// Errors that are already AppErrors pass through untouched; unrecognized ones become storage errors.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, entity.ErrInvalidEntity) {
		return domainerrors.NewValidationError(err)
	}
	if errors.Is(err, repository.ErrStillReferenced) || errors.Is(err, repository.ErrDuplicateKey) {
		return domainerrors.ErrConstraintViolation.WithDetails(err.Error())
	}
	for sentinel, notFound := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return notFound
		}
	}

	return domainerrors.NewDatabaseExecuteError(err, "")
}

// requireActive share-locks a referenced row for the rest of the transaction
// and fails with missing when it is absent or soft-deleted.
func requireActive(ctx context.Context, gw repository.IntegrityGateway, kind entity.Kind, id uuid.UUID, missing error) error {
	found, err := gw.LockRow(ctx, kind, id, repository.LockShare, true)
	if err != nil {
		return errors.Wrapf(err, "lock %s %s", kind, id)
	}
	if !found {
		return missing
	}

	return nil
}

// lockForWrite takes the exclusive row lock for an update and reports a missing active row as not found.
func lockForWrite(ctx context.Context, gw repository.IntegrityGateway, kind entity.Kind, id uuid.UUID) error {
	found, err := gw.LockRow(ctx, kind, id, repository.LockUpdate, true)
	if err != nil {
		return errors.Wrapf(err, "lock %s %s", kind, id)
	}
	if !found {
		return domainerrors.NotFoundFor(kind)
	}

	return nil
}

func withDefault[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}

	return *v
}
