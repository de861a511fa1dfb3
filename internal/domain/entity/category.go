package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node of the product category tree. A nil parent marks a root.
type Category struct {
	id        uuid.UUID
	parentID  *uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
	status    Status
}

// CategoryParams carries the raw fields of a category.
type CategoryParams struct {
	ID        uuid.UUID
	ParentID  *uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewCategory validates params and returns the category.
func NewCategory(p CategoryParams) (*Category, error) {
	name, err := requireText(KindCategory, "name", p.Name)
	if err != nil {
		return nil, err
	}
	if err := checkTimestamps(p.CreatedAt, p.UpdatedAt, p.DeletedAt); err != nil {
		return nil, err
	}

	return &Category{
		id:        p.ID,
		parentID:  copyID(p.ParentID),
		name:      name,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
		status:    StatusFrom(p.DeletedAt),
	}, nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) ParentID() *uuid.UUID { return copyID(c.parentID) }
func (c *Category) Name() string         { return c.name }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }
func (c *Category) Status() Status       { return c.status }
func (c *Category) IsActive() bool       { return c.status.Active() }
func (c *Category) IsRoot() bool         { return c.parentID == nil }

// Params returns the fields of c, ready to be changed and passed back to NewCategory.
func (c *Category) Params() CategoryParams {
	return CategoryParams{
		ID:        c.id,
		ParentID:  copyID(c.parentID),
		Name:      c.name,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
		DeletedAt: DeletedAt(c.status),
	}
}

// HasParent reports whether c is a direct child of id.
func (c *Category) HasParent(id uuid.UUID) bool {
	return c.parentID != nil && *c.parentID == id
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id

	return &v
}
