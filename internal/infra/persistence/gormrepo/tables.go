package gormrepo

import (
	"context"
	"time"

	"pocketratings/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// table describes the physical shape of one entity kind.
type table struct {
	name string
	// hasUpdatedAt is false for locations and purchases, whose rows carry no updated_at column.
	hasUpdatedAt bool
	// foreignKeys lists the columns that may be counted by the integrity gateway.
	foreignKeys map[string]struct{}
}

var tables = map[entity.Kind]table{
	entity.KindCategory: {name: "categories", hasUpdatedAt: true, foreignKeys: columns("parent_id")},
	entity.KindProduct:  {name: "products", hasUpdatedAt: true, foreignKeys: columns("category_id")},
	entity.KindLocation: {name: "locations"},
	entity.KindPurchase: {name: "purchases", foreignKeys: columns("user_id", "product_id", "location_id")},
	entity.KindReview:   {name: "reviews", hasUpdatedAt: true, foreignKeys: columns("product_id", "user_id")},
	entity.KindUser:     {name: "users", hasUpdatedAt: true},
}

func columns(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}

// softDelete stamps deleted_at (and updated_at where present) on the row only while it is active,
// so a second call affects zero rows and leaves the first timestamps untouched.
func softDelete(ctx context.Context, db *gorm.DB, kind entity.Kind, id uuid.UUID, at time.Time) (int64, error) {
	t := tables[kind]
	updates := map[string]any{"deleted_at": toUnix(at)}
	if t.hasUpdatedAt {
		updates["updated_at"] = toUnix(at)
	}

	result := db.WithContext(ctx).
		Table(t.name).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updates)
	if result.Error != nil {
		return 0, writeError(result.Error, "failed to soft delete from "+t.name)
	}

	return result.RowsAffected, nil
}

// hardDelete removes the row whatever its status.
func hardDelete(ctx context.Context, db *gorm.DB, kind entity.Kind, row any, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(row)
	if result.Error != nil {
		return 0, writeError(result.Error, "failed to hard delete from "+tables[kind].name)
	}

	return result.RowsAffected, nil
}

// updateActive writes every column of row, but only while the stored row is active.
func updateActive(ctx context.Context, db *gorm.DB, kind entity.Kind, row any, id uuid.UUID, notFound error) error {
	result := db.WithContext(ctx).
		Model(row).
		Where("id = ? AND deleted_at IS NULL", id).
		Select("*").
		Updates(row)
	if result.Error != nil {
		return writeError(result.Error, "failed to update "+tables[kind].name)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}
