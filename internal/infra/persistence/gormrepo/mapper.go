package gormrepo

import (
	"time"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/errors"
	"pocketratings/internal/infra/persistence/model"
)

func toUnix(t time.Time) int64 {
	return t.Unix()
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func toUnixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	sec := t.Unix()

	return &sec
}

func fromUnixPtr(sec *int64) *time.Time {
	if sec == nil {
		return nil
	}
	t := fromUnix(*sec)

	return &t
}

// Rows read back from the store are re-validated; a failure means the stored data is corrupt.
func corrupt(err error, table string) error {
	return errors.Wrapf(err, "corrupt row in %s", table)
}

func fromCategoryDomain(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:        c.ID(),
		ParentID:  c.ParentID(),
		Name:      c.Name(),
		CreatedAt: toUnix(c.CreatedAt()),
		UpdatedAt: toUnix(c.UpdatedAt()),
		DeletedAt: toUnixPtr(entity.DeletedAt(c.Status())),
	}
}

func toCategoryDomain(m *model.CategoryModel) (*entity.Category, error) {
	c, err := entity.NewCategory(entity.CategoryParams{
		ID:        m.ID,
		ParentID:  m.ParentID,
		Name:      m.Name,
		CreatedAt: fromUnix(m.CreatedAt),
		UpdatedAt: fromUnix(m.UpdatedAt),
		DeletedAt: fromUnixPtr(m.DeletedAt),
	})
	if err != nil {
		return nil, corrupt(err, "categories")
	}

	return c, nil
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:         p.ID(),
		CategoryID: p.CategoryID(),
		Brand:      p.Brand(),
		Name:       p.Name(),
		CreatedAt:  toUnix(p.CreatedAt()),
		UpdatedAt:  toUnix(p.UpdatedAt()),
		DeletedAt:  toUnixPtr(entity.DeletedAt(p.Status())),
	}
}

func toProductDomain(m *model.ProductModel) (*entity.Product, error) {
	p, err := entity.NewProduct(entity.ProductParams{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Brand:      m.Brand,
		Name:       m.Name,
		CreatedAt:  fromUnix(m.CreatedAt),
		UpdatedAt:  fromUnix(m.UpdatedAt),
		DeletedAt:  fromUnixPtr(m.DeletedAt),
	})
	if err != nil {
		return nil, corrupt(err, "products")
	}

	return p, nil
}

func toProductListing(row *model.ProductListingRow) entity.ProductListing {
	return entity.ProductListing{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Brand:        row.Brand,
		Name:         row.Name,
		CreatedAt:    fromUnix(row.CreatedAt),
		UpdatedAt:    fromUnix(row.UpdatedAt),
		DeletedAt:    fromUnixPtr(row.DeletedAt),
	}
}

func fromLocationDomain(l *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:        l.ID(),
		Name:      l.Name(),
		DeletedAt: toUnixPtr(entity.DeletedAt(l.Status())),
	}
}

func toLocationDomain(m *model.LocationModel) (*entity.Location, error) {
	l, err := entity.NewLocation(entity.LocationParams{
		ID:        m.ID,
		Name:      m.Name,
		DeletedAt: fromUnixPtr(m.DeletedAt),
	})
	if err != nil {
		return nil, corrupt(err, "locations")
	}

	return l, nil
}

func fromPurchaseDomain(p *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:          p.ID(),
		UserID:      p.UserID(),
		ProductID:   p.ProductID(),
		LocationID:  p.LocationID(),
		Quantity:    p.Quantity(),
		Price:       p.Price().String(),
		PurchasedAt: toUnix(p.PurchasedAt()),
		DeletedAt:   toUnixPtr(entity.DeletedAt(p.Status())),
	}
}

func toPurchaseDomain(m *model.PurchaseModel) (*entity.Purchase, error) {
	price, err := entity.ParsePrice(m.Price)
	if err != nil {
		return nil, corrupt(err, "purchases")
	}
	p, err := entity.NewPurchase(entity.PurchaseParams{
		ID:          m.ID,
		UserID:      m.UserID,
		ProductID:   m.ProductID,
		LocationID:  m.LocationID,
		Quantity:    m.Quantity,
		Price:       price,
		PurchasedAt: fromUnix(m.PurchasedAt),
		DeletedAt:   fromUnixPtr(m.DeletedAt),
	})
	if err != nil {
		return nil, corrupt(err, "purchases")
	}

	return p, nil
}

func fromReviewDomain(r *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserID:    r.UserID(),
		Rating:    r.Rating().String(),
		Text:      r.Text(),
		CreatedAt: toUnix(r.CreatedAt()),
		UpdatedAt: toUnix(r.UpdatedAt()),
		DeletedAt: toUnixPtr(entity.DeletedAt(r.Status())),
	}
}

func toReviewDomain(m *model.ReviewModel) (*entity.Review, error) {
	rating, err := entity.ParseRating(m.Rating)
	if err != nil {
		return nil, corrupt(err, "reviews")
	}
	r, err := entity.NewReview(entity.ReviewParams{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Rating:    rating,
		Text:      m.Text,
		CreatedAt: fromUnix(m.CreatedAt),
		UpdatedAt: fromUnix(m.UpdatedAt),
		DeletedAt: fromUnixPtr(m.DeletedAt),
	})
	if err != nil {
		return nil, corrupt(err, "reviews")
	}

	return r, nil
}

func toReviewListing(row *model.ReviewListingRow) (entity.ReviewListing, error) {
	rating, err := entity.ParseRating(row.Rating)
	if err != nil {
		return entity.ReviewListing{}, corrupt(err, "reviews")
	}

	return entity.ReviewListing{
		ID:           row.ID,
		ProductID:    row.ProductID,
		ProductBrand: row.ProductBrand,
		ProductName:  row.ProductName,
		UserID:       row.UserID,
		UserName:     row.UserName,
		Rating:       rating,
		Text:         row.Text,
		CreatedAt:    fromUnix(row.CreatedAt),
		UpdatedAt:    fromUnix(row.UpdatedAt),
		DeletedAt:    fromUnixPtr(row.DeletedAt),
	}, nil
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    toUnix(u.CreatedAt()),
		UpdatedAt:    toUnix(u.UpdatedAt()),
		DeletedAt:    toUnixPtr(entity.DeletedAt(u.Status())),
	}
}

func toUserDomain(m *model.UserModel) (*entity.User, error) {
	u, err := entity.NewUser(entity.UserParams{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    fromUnix(m.CreatedAt),
		UpdatedAt:    fromUnix(m.UpdatedAt),
		DeletedAt:    fromUnixPtr(m.DeletedAt),
	})
	if err != nil {
		return nil, corrupt(err, "users")
	}

	return u, nil
}

// mapAll converts a slice of rows with conv, stopping at the first failure.
func mapAll[M any, E any](rows []M, conv func(*M) (E, error)) ([]E, error) {
	out := make([]E, 0, len(rows))
	for i := range rows {
		e, err := conv(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}
