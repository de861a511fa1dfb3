package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a branded item that belongs to exactly one category.
type Product struct {
	id         uuid.UUID
	categoryID uuid.UUID
	brand      string
	name       string
	createdAt  time.Time
	updatedAt  time.Time
	status     Status
}

// ProductParams carries the raw fields of a product.
type ProductParams struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Brand      string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewProduct validates params and returns the product.
func NewProduct(p ProductParams) (*Product, error) {
	brand, err := requireText(KindProduct, "brand", p.Brand)
	if err != nil {
		return nil, err
	}
	name, err := requireText(KindProduct, "name", p.Name)
	if err != nil {
		return nil, err
	}
	if err := checkTimestamps(p.CreatedAt, p.UpdatedAt, p.DeletedAt); err != nil {
		return nil, err
	}

	return &Product{
		id:         p.ID,
		categoryID: p.CategoryID,
		brand:      brand,
		name:       name,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
		status:     StatusFrom(p.DeletedAt),
	}, nil
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) CategoryID() uuid.UUID { return p.categoryID }
func (p *Product) Brand() string         { return p.brand }
func (p *Product) Name() string          { return p.name }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }
func (p *Product) Status() Status        { return p.status }
func (p *Product) IsActive() bool        { return p.status.Active() }

// Params returns the fields of p, ready to be changed and passed back to NewProduct.
func (p *Product) Params() ProductParams {
	return ProductParams{
		ID:         p.id,
		CategoryID: p.categoryID,
		Brand:      p.brand,
		Name:       p.name,
		CreatedAt:  p.createdAt,
		UpdatedAt:  p.updatedAt,
		DeletedAt:  DeletedAt(p.status),
	}
}
