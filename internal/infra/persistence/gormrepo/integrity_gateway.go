package gormrepo

import (
	"context"

	"pocketratings/internal/domain/entity"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// integrityGateway implements repository.IntegrityGateway with COUNT and SELECT .. FOR queries.
type integrityGateway struct {
	db *gorm.DB
}

// NewIntegrityGateway is the constructor for integrityGateway.
func NewIntegrityGateway(db *gorm.DB) repository.IntegrityGateway {
	return &integrityGateway{db: db}
}

// CountDependents counts rows of dependent whose foreignKey equals id.
// foreignKey must be one of the known reference columns of the dependent table.
func (g *integrityGateway) CountDependents(ctx context.Context, dependent entity.Kind, foreignKey string, id uuid.UUID, activeOnly bool) (int64, error) {
	t, ok := tables[dependent]
	if !ok {
		return 0, errors.Errorf("unknown entity kind %q", dependent)
	}
	if _, ok := t.foreignKeys[foreignKey]; !ok {
		return 0, errors.Errorf("%s has no reference column %q", t.name, foreignKey)
	}

	query := g.db.WithContext(ctx).
		Table(t.name).
		Where(clause.Eq{Column: clause.Column{Name: foreignKey}, Value: id})
	if activeOnly {
		query = query.Where("deleted_at IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count dependents in "+t.name)
	}

	return count, nil
}

// LockRow selects the row and, on PostgreSQL, locks it until the transaction ends.
// SQLite has no row locks; its single-writer transactions give the same ordering.
func (g *integrityGateway) LockRow(ctx context.Context, kind entity.Kind, id uuid.UUID, mode repository.LockMode, activeOnly bool) (bool, error) {
	t, ok := tables[kind]
	if !ok {
		return false, errors.Errorf("unknown entity kind %q", kind)
	}

	query := g.db.WithContext(ctx).Table(t.name).Where("id = ?", id)
	if activeOnly {
		query = query.Where("deleted_at IS NULL")
	}
	if strength := lockStrength(mode); strength != "" && g.db.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: strength})
	}

	var ids []string
	if err := query.Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to lock row in "+t.name)
	}

	return len(ids) > 0, nil
}

func lockStrength(mode repository.LockMode) string {
	switch mode {
	case repository.LockShare:
		return clause.LockingStrengthShare
	case repository.LockUpdate:
		return clause.LockingStrengthUpdate
	default:
		return ""
	}
}
