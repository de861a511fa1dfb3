package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that records purchases and writes reviews.
type User struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
	status       Status
}

// UserParams carries the raw fields of a user. PasswordHash is an already hashed secret.
type UserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewUser validates params and returns the user.
func NewUser(p UserParams) (*User, error) {
	name, err := requireText(KindUser, "name", p.Name)
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(p.Email)
	if !ValidEmail(email) {
		return nil, &InvalidEmailError{Email: p.Email}
	}
	if p.PasswordHash == "" {
		return nil, &EmptyPasswordHashError{}
	}
	if err := checkTimestamps(p.CreatedAt, p.UpdatedAt, p.DeletedAt); err != nil {
		return nil, err
	}

	return &User{
		id:           p.ID,
		name:         name,
		email:        email,
		passwordHash: p.PasswordHash,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
		status:       StatusFrom(p.DeletedAt),
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
func (u *User) Status() Status       { return u.status }
func (u *User) IsActive() bool       { return u.status.Active() }

// Params returns the fields of u, ready to be changed and passed back to NewUser.
func (u *User) Params() UserParams {
	return UserParams{
		ID:           u.id,
		Name:         u.name,
		Email:        u.email,
		PasswordHash: u.passwordHash,
		CreatedAt:    u.createdAt,
		UpdatedAt:    u.updatedAt,
		DeletedAt:    DeletedAt(u.status),
	}
}

// ValidEmail checks the structure of an address: exactly one '@', a non-empty
// local part and a domain of at least two non-empty dot-separated labels.
func ValidEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}

	return true
}
