// Package presenter turns domain entities into the JSON shapes served by the API and printed by the CLI.
package presenter

import (
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/hierarchy"
	"pocketratings/internal/domain/service"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID  `json:"id"`
	ParentID  *uuid.UUID `json:"parent_id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CategoryNode is one level of a category tree. The virtual top node has no Category.
type CategoryNode struct {
	*Category
	Children []*CategoryNode `json:"children"`
}

type Product struct {
	ID           uuid.UUID  `json:"id"`
	CategoryID   uuid.UUID  `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"`
	Brand        string     `json:"brand"`
	Name         string     `json:"name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

type Location struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type Purchase struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	ProductID   uuid.UUID      `json:"product_id"`
	LocationID  uuid.UUID      `json:"location_id"`
	Quantity    int            `json:"quantity"`
	Price       entity.Decimal `json:"price"`
	PurchasedAt time.Time      `json:"purchased_at"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
}

type Review struct {
	ID           uuid.UUID      `json:"id"`
	ProductID    uuid.UUID      `json:"product_id"`
	ProductBrand string         `json:"product_brand,omitempty"`
	ProductName  string         `json:"product_name,omitempty"`
	UserID       uuid.UUID      `json:"user_id"`
	UserName     string         `json:"user_name,omitempty"`
	Rating       entity.Decimal `json:"rating"`
	Text         *string        `json:"text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty"`
}

// User never carries the password hash.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func NewCategory(c *entity.Category) *Category {
	if c == nil {
		return nil
	}

	return &Category{
		ID:        c.ID(),
		ParentID:  c.ParentID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
		DeletedAt: entity.DeletedAt(c.Status()),
	}
}

func NewCategoryTree(n *hierarchy.Node) *CategoryNode {
	out := &CategoryNode{Category: NewCategory(n.Category), Children: make([]*CategoryNode, 0, len(n.Children))}
	for _, child := range n.Children {
		out.Children = append(out.Children, NewCategoryTree(child))
	}

	return out
}

func NewProduct(p *entity.Product) *Product {
	return &Product{
		ID:         p.ID(),
		CategoryID: p.CategoryID(),
		Brand:      p.Brand(),
		Name:       p.Name(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
		DeletedAt:  entity.DeletedAt(p.Status()),
	}
}

func NewProductListing(rows []entity.ProductListing) []*Product {
	out := make([]*Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, &Product{
			ID:           r.ID,
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Brand:        r.Brand,
			Name:         r.Name,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
			DeletedAt:    r.DeletedAt,
		})
	}

	return out
}

func NewLocation(l *entity.Location) *Location {
	return &Location{ID: l.ID(), Name: l.Name(), DeletedAt: entity.DeletedAt(l.Status())}
}

func NewLocations(list []*entity.Location) []*Location {
	return mapAll(list, NewLocation)
}

func NewPurchase(p *entity.Purchase) *Purchase {
	return &Purchase{
		ID:          p.ID(),
		UserID:      p.UserID(),
		ProductID:   p.ProductID(),
		LocationID:  p.LocationID(),
		Quantity:    p.Quantity(),
		Price:       p.Price(),
		PurchasedAt: p.PurchasedAt(),
		DeletedAt:   entity.DeletedAt(p.Status()),
	}
}

func NewPurchases(list []*entity.Purchase) []*Purchase {
	return mapAll(list, NewPurchase)
}

func NewReview(r *entity.Review) *Review {
	return &Review{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserID:    r.UserID(),
		Rating:    r.Rating(),
		Text:      r.Text(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
		DeletedAt: entity.DeletedAt(r.Status()),
	}
}

func NewReviewListing(rows []entity.ReviewListing) []*Review {
	out := make([]*Review, 0, len(rows))
	for _, r := range rows {
		out = append(out, &Review{
			ID:           r.ID,
			ProductID:    r.ProductID,
			ProductBrand: r.ProductBrand,
			ProductName:  r.ProductName,
			UserID:       r.UserID,
			UserName:     r.UserName,
			Rating:       r.Rating,
			Text:         r.Text,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
			DeletedAt:    r.DeletedAt,
		})
	}

	return out
}

func NewUser(u *entity.User) *User {
	return &User{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
		DeletedAt: entity.DeletedAt(u.Status()),
	}
}

func NewUsers(list []*entity.User) []*User {
	return mapAll(list, NewUser)
}

// NewTokens presents a token pair as a bearer grant.
func NewTokens(pair service.TokenPair) *Tokens {
	return &Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(pair.ExpiresIn.Seconds()),
	}
}

func mapAll[E any, V any](list []E, fn func(E) V) []V {
	out := make([]V, 0, len(list))
	for _, e := range list {
		out = append(out, fn(e))
	}

	return out
}
