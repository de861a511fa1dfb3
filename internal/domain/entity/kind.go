package entity

// Kind identifies one of the persisted entity kinds.
type Kind string

const (
	KindCategory Kind = "category"
	KindProduct  Kind = "product"
	KindLocation Kind = "location"
	KindPurchase Kind = "purchase"
	KindReview   Kind = "review"
	KindUser     Kind = "user"
)

// Kinds lists every entity kind in deletion-safe order: dependents before the rows they reference.
var Kinds = []Kind{KindReview, KindPurchase, KindProduct, KindCategory, KindLocation, KindUser}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k names a known entity kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCategory, KindProduct, KindLocation, KindPurchase, KindReview, KindUser:
		return true
	default:
		return false
	}
}
