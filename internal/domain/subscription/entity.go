package subscription

import (
	"time"

	"parking-settlement/internal/domain/session"

	"github.com/google/uuid"
)

// Subscription (abono) grants recurring access to one spot for a date range.
// Vehicles on an active subscription exit that spot without a fee.
type Subscription struct {
	ID       uuid.UUID
	SpotID   uuid.UUID
	Plates   []string
	StartsOn time.Time
	EndsOn   time.Time
	Active   bool
}

// Covers reports whether the plate may exit the spot for free at the given time.
// EndsOn is inclusive of the whole day.
func (s *Subscription) Covers(plate string, spotID uuid.UUID, at time.Time) bool {
	if s == nil || !s.Active || s.SpotID != spotID {
		return false
	}
	if at.Before(s.StartsOn) || !at.Before(s.EndsOn.AddDate(0, 0, 1)) {
		return false
	}
	plate = session.NormalizePlate(plate)
	for _, p := range s.Plates {
		if session.NormalizePlate(p) == plate {
			return true
		}
	}
	return false
}
