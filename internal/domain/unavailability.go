package domain

import (
	"context"
	"time"
)

// Unavailability помечает день, в который участник не может дежурить.
// Day хранится строкой YYYY-MM-DD (UTC).
type Unavailability struct {
	ID        string
	TeamID    string
	MemberID  string
	Day       string
	CreatedAt time.Time
}

// UnavailabilityRepository определяет контракт для работы с отметками недоступности.
type UnavailabilityRepository interface {
	Create(ctx context.Context, mark *Unavailability) error
	ListInRange(ctx context.Context, teamID, startDate, endDate string) ([]*Unavailability, error)
	Delete(ctx context.Context, teamID, unavailabilityID string) error
}
