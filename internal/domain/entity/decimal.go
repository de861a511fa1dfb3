package entity

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Bounds on parsed decimals. Trailing zeros do not count against them.
const (
	maxIntegerDigits  = 18
	maxFractionDigits = 8
)

// Decimal is an exact decimal number used for prices and ratings.
// Values are never mutated after construction, so copies may share storage.
type Decimal struct {
	v apd.Decimal
}

// NewDecimal returns coeff * 10^exp.
func NewDecimal(coeff int64, exp int32) Decimal {
	return Decimal{v: *apd.New(coeff, exp)}
}

// ParseDecimal parses finite decimal text such as "4.5" or "0.01".
// Values with more than 18 integer digits or 8 fractional digits are rejected.
func ParseDecimal(text string) (Decimal, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(text))
	if err != nil || d.Form != apd.Finite || !inRange(d) {
		return Decimal{}, &InvalidDecimalError{Field: "decimal", Value: text}
	}

	return Decimal{v: *d}, nil
}

func inRange(d *apd.Decimal) bool {
	var reduced apd.Decimal
	reduced.Reduce(d)
	if reduced.IsZero() {
		return true
	}

	return reduced.Exponent >= -maxFractionDigits && reduced.NumDigits()+int64(reduced.Exponent) <= maxIntegerDigits
}

// ParseRating parses rating text; range checks happen in NewReview.
func ParseRating(text string) (Decimal, error) {
	d, err := ParseDecimal(text)
	if err != nil {
		return Decimal{}, &InvalidDecimalError{Field: "rating", Value: text}
	}

	return d, nil
}

// ParsePrice parses price text; sign checks happen in NewPurchase.
func ParsePrice(text string) (Decimal, error) {
	d, err := ParseDecimal(text)
	if err != nil {
		return Decimal{}, &InvalidDecimalError{Field: "price", Value: text}
	}

	return d, nil
}

// Cmp compares d and o numerically, ignoring trailing zeros.
func (d Decimal) Cmp(o Decimal) int {
	return d.v.Cmp(&o.v)
}

// Sign returns -1, 0 or 1.
func (d Decimal) Sign() int {
	return d.v.Sign()
}

func (d Decimal) String() string {
	return d.v.Text('f')
}

// MarshalJSON encodes the decimal as a JSON string to keep every digit.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts both "4.5" and 4.5.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	text := string(data)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	parsed, err := ParseDecimal(text)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
