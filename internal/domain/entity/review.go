package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// MinRating is the lowest accepted review rating.
	MinRating = NewDecimal(1, 0)
	// MaxRating is the highest accepted review rating.
	MaxRating = NewDecimal(5, 0)
)

// Review is a user's rating of a product with optional free text.
type Review struct {
	id        uuid.UUID
	productID uuid.UUID
	userID    uuid.UUID
	rating    Decimal
	text      *string
	createdAt time.Time
	updatedAt time.Time
	status    Status
}

// ReviewParams carries the raw fields of a review.
type ReviewParams struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    Decimal
	Text      *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewReview validates params and returns the review.
// Ratings are compared as exact decimals, so 0.999 and 5.0001 are both rejected.
func NewReview(p ReviewParams) (*Review, error) {
	if p.Rating.Cmp(MinRating) < 0 || p.Rating.Cmp(MaxRating) > 0 {
		return nil, &RatingOutOfRangeError{Rating: p.Rating}
	}
	if err := checkTimestamps(p.CreatedAt, p.UpdatedAt, p.DeletedAt); err != nil {
		return nil, err
	}

	return &Review{
		id:        p.ID,
		productID: p.ProductID,
		userID:    p.UserID,
		rating:    p.Rating,
		text:      normalizeText(p.Text),
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
		status:    StatusFrom(p.DeletedAt),
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ProductID() uuid.UUID { return r.productID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Rating() Decimal      { return r.rating }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
func (r *Review) Status() Status       { return r.status }
func (r *Review) IsActive() bool       { return r.status.Active() }

// Text returns the review body, or nil when the review has none.
func (r *Review) Text() *string {
	if r.text == nil {
		return nil
	}
	t := *r.text

	return &t
}

// Params returns the fields of r, ready to be changed and passed back to NewReview.
func (r *Review) Params() ReviewParams {
	return ReviewParams{
		ID:        r.id,
		ProductID: r.productID,
		UserID:    r.userID,
		Rating:    r.rating,
		Text:      r.Text(),
		CreatedAt: r.createdAt,
		UpdatedAt: r.updatedAt,
		DeletedAt: DeletedAt(r.status),
	}
}

// normalizeText treats a whitespace-only body as no body at all.
func normalizeText(text *string) *string {
	if text == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
