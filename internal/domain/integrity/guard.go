// Package integrity decides whether an entity may be deleted while other rows still depend on it.
package integrity

import (
	"context"
	"fmt"
	"net/http"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/errors"

	"github.com/google/uuid"
)

// ErrViolation is matched by every ViolationError.
var ErrViolation = errors.New("integrity violation")

// Rule blocks the deletion of a row while rows of Dependent reference it through ForeignKey.
type Rule struct {
	Dependent  entity.Kind
	ForeignKey string
	// ActiveOnly counts only dependents that are not soft-deleted.
	ActiveOnly bool
	Reason     string
}

// rules is the fixed dependency table. Kinds without an entry have no dependents.
var rules = map[entity.Kind][]Rule{
	entity.KindCategory: {
		{Dependent: entity.KindCategory, ForeignKey: "parent_id", ActiveOnly: true, Reason: "category has active child categories"},
		{Dependent: entity.KindProduct, ForeignKey: "category_id", ActiveOnly: true, Reason: "category has active products"},
	},
	entity.KindProduct: {
		{Dependent: entity.KindPurchase, ForeignKey: "product_id", ActiveOnly: false, Reason: "product is referenced by purchases"},
	},
	entity.KindLocation: {
		{Dependent: entity.KindPurchase, ForeignKey: "location_id", ActiveOnly: false, Reason: "location is referenced by purchases"},
	},
}

// RulesFor returns the dependency checks run before deleting a row of kind, in evaluation order.
func RulesFor(kind entity.Kind) []Rule {
	return append([]Rule(nil), rules[kind]...)
}

// DependencyCounter counts rows of dependent whose foreignKey column equals id.
type DependencyCounter interface {
	CountDependents(ctx context.Context, dependent entity.Kind, foreignKey string, id uuid.UUID, activeOnly bool) (int64, error)
}

// ViolationError names the relation that blocked a delete.
type ViolationError struct {
	Kind      entity.Kind
	ID        uuid.UUID
	Dependent entity.Kind
	Count     int64
	Reason    string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("cannot delete %s %s: %s (%d)", e.Kind, e.ID, e.Reason, e.Count)
}

func (e *ViolationError) Unwrap() error     { return ErrViolation }
func (e *ViolationError) HTTPCode() int     { return http.StatusConflict }
func (e *ViolationError) ErrorCode() string { return "INTEGRITY_VIOLATION" }
func (e *ViolationError) Message() string   { return "Cannot delete: " + e.Reason }
func (e *ViolationError) Details() string   { return e.Error() }

// Guard runs the dependency checks of a kind against a counter.
type Guard struct {
	counter DependencyCounter
}

// NewGuard returns a guard reading counts from counter.
func NewGuard(counter DependencyCounter) *Guard {
	return &Guard{counter: counter}
}

// CanDelete returns nil when no rule blocks deleting id. The same checks apply to soft and hard deletes.
// The first rule with a non-zero count fails with a *ViolationError; counter failures are returned wrapped.
func (g *Guard) CanDelete(ctx context.Context, kind entity.Kind, id uuid.UUID) error {
	for _, rule := range rules[kind] {
		count, err := g.counter.CountDependents(ctx, rule.Dependent, rule.ForeignKey, id, rule.ActiveOnly)
		if err != nil {
			return errors.Wrapf(err, "count %s dependents of %s %s", rule.Dependent, kind, id)
		}
		if count > 0 {
			return &ViolationError{
				Kind:      kind,
				ID:        id,
				Dependent: rule.Dependent,
				Count:     count,
				Reason:    rule.Reason,
			}
		}
	}

	return nil
}
