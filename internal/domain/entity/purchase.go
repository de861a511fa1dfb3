package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records a user buying a quantity of a product at a location.
type Purchase struct {
	id          uuid.UUID
	userID      uuid.UUID
	productID   uuid.UUID
	locationID  uuid.UUID
	quantity    int
	price       Decimal
	purchasedAt time.Time
	status      Status
}

// PurchaseParams carries the raw fields of a purchase.
type PurchaseParams struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProductID   uuid.UUID
	LocationID  uuid.UUID
	Quantity    int
	Price       Decimal
	PurchasedAt time.Time
	DeletedAt   *time.Time
}

// NewPurchase validates params and returns the purchase.
func NewPurchase(p PurchaseParams) (*Purchase, error) {
	if p.Quantity < 1 {
		return nil, &QuantityOutOfRangeError{Quantity: p.Quantity}
	}
	if p.Price.Sign() < 0 {
		return nil, &NegativePriceError{Price: p.Price}
	}

	return &Purchase{
		id:          p.ID,
		userID:      p.UserID,
		productID:   p.ProductID,
		locationID:  p.LocationID,
		quantity:    p.Quantity,
		price:       p.Price,
		purchasedAt: p.PurchasedAt,
		status:      StatusFrom(p.DeletedAt),
	}, nil
}

func (p *Purchase) ID() uuid.UUID          { return p.id }
func (p *Purchase) UserID() uuid.UUID      { return p.userID }
func (p *Purchase) ProductID() uuid.UUID   { return p.productID }
func (p *Purchase) LocationID() uuid.UUID  { return p.locationID }
func (p *Purchase) Quantity() int          { return p.quantity }
func (p *Purchase) Price() Decimal         { return p.price }
func (p *Purchase) PurchasedAt() time.Time { return p.purchasedAt }
func (p *Purchase) Status() Status         { return p.status }
func (p *Purchase) IsActive() bool         { return p.status.Active() }

// Params returns the fields of p, ready to be changed and passed back to NewPurchase.
func (p *Purchase) Params() PurchaseParams {
	return PurchaseParams{
		ID:          p.id,
		UserID:      p.userID,
		ProductID:   p.productID,
		LocationID:  p.locationID,
		Quantity:    p.quantity,
		Price:       p.price,
		PurchasedAt: p.purchasedAt,
		DeletedAt:   DeletedAt(p.status),
	}
}
