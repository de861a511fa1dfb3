package entity

import "time"

// Status is the soft-delete state of an entity: either Active or Deleted.
// The interface is sealed; no other package can add variants.
type Status interface {
	isStatus()
	// Active reports whether the entity is live.
	Active() bool
}

// Active marks an entity that has not been soft-deleted.
type Active struct{}

// Deleted marks an entity soft-deleted at At.
type Deleted struct {
	At time.Time
}

func (Active) isStatus()  {}
func (Deleted) isStatus() {}

func (Active) Active() bool  { return true }
func (Deleted) Active() bool { return false }

// StatusFrom converts an optional deletion time into a Status.
func StatusFrom(deletedAt *time.Time) Status {
	if deletedAt == nil {
		return Active{}
	}

	return Deleted{At: *deletedAt}
}

// DeletedAt returns the deletion time of s, or nil when s is Active.
func DeletedAt(s Status) *time.Time {
	if d, ok := s.(Deleted); ok {
		at := d.At
		return &at
	}

	return nil
}
