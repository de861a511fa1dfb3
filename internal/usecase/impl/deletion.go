package impl

import (
	"context"

	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/integrity"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/errors"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
)

// deletion describes one guarded delete.
type deletion struct {
	kind entity.Kind
	id   uuid.UUID
	mode usecase.DeleteMode
	// target picks the repository bound to the transaction.
	target func(repository.RepositoryFactory) repository.Deleter
	// authorize runs after the row lock, e.g. for ownership checks. Optional.
	authorize func(ctx context.Context, repos repository.RepositoryFactory) error
}

// executeDelete locks the row, runs the integrity guard and issues the conditional delete in one transaction.
// A soft delete of a missing or already deleted row fails with ErrAlreadyDeleted.
func executeDelete(ctx context.Context, txManager repository.TransactionManager, d deletion) error {
	missing := func() error {
		if d.mode == usecase.HardDelete {
			return domainerrors.NotFoundFor(d.kind)
		}

		return domainerrors.ErrAlreadyDeleted
	}

	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		gw := repos.NewIntegrityGateway()

		found, err := gw.LockRow(ctx, d.kind, d.id, repository.LockUpdate, d.mode == usecase.SoftDelete)
		if err != nil {
			return errors.Wrapf(err, "lock %s %s", d.kind, d.id)
		}
		if !found {
			return missing()
		}

		if d.authorize != nil {
			if err := d.authorize(ctx, repos); err != nil {
				return err
			}
		}

		if err := integrity.NewGuard(gw).CanDelete(ctx, d.kind, d.id); err != nil {
			return err
		}

		var affected int64
		if d.mode == usecase.HardDelete {
			affected, err = d.target(repos).HardDelete(ctx, d.id)
		} else {
			affected, err = d.target(repos).SoftDelete(ctx, d.id, timeNow())
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return missing()
		}

		return nil
	})

	return translate(err)
}
