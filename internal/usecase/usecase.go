// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// DeleteMode selects between a soft delete, which stamps deleted_at, and a hard delete, which removes the row.
type DeleteMode bool

const (
	SoftDelete DeleteMode = false
	HardDelete DeleteMode = true
)

func (m DeleteMode) String() string {
	if m == HardDelete {
		return "hard"
	}

	return "soft"
}
