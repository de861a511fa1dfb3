package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a shop or place where purchases happen.
type Location struct {
	id     uuid.UUID
	name   string
	status Status
}

// LocationParams carries the raw fields of a location.
type LocationParams struct {
	ID        uuid.UUID
	Name      string
	DeletedAt *time.Time
}

// NewLocation validates params and returns the location.
func NewLocation(p LocationParams) (*Location, error) {
	name, err := requireText(KindLocation, "name", p.Name)
	if err != nil {
		return nil, err
	}

	return &Location{id: p.ID, name: name, status: StatusFrom(p.DeletedAt)}, nil
}

func (l *Location) ID() uuid.UUID  { return l.id }
func (l *Location) Name() string   { return l.name }
func (l *Location) Status() Status { return l.status }
func (l *Location) IsActive() bool { return l.status.Active() }

// Params returns the fields of l, ready to be changed and passed back to NewLocation.
func (l *Location) Params() LocationParams {
	return LocationParams{ID: l.id, Name: l.name, DeletedAt: DeletedAt(l.status)}
}
