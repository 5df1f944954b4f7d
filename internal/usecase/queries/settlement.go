package queries

import (
	"context"
	"time"

	"parking-settlement/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
	MaxAuditRange    = 31 * 24 * time.Hour
)

var ErrInvalidRange = errs.New("invalid settlement range")

type SettlementView struct {
	ID          uuid.UUID  `json:"id"`
	SessionID   uuid.UUID  `json:"session_id"`
	AttemptID   uuid.UUID  `json:"attempt_id"`
	Plate       string     `json:"plate"`
	SpotID      *uuid.UUID `json:"spot_id,omitempty"`
	EntryAt     time.Time  `json:"entry_at"`
	ExitAt      *time.Time `json:"exit_at,omitempty"`
	AmountCents int64      `json:"amount_cents"`
	Method      string     `json:"method"`
	SettledAt   time.Time  `json:"settled_at"`
	OperatorID  *uuid.UUID `json:"operator_id,omitempty"`
}

type SettlementFilter struct {
	EstablishmentID uuid.UUID
	From            time.Time
	To              time.Time
	Limit           int
}

type SettlementReadStore interface {
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID, from, to time.Time, limit int32) ([]*SettlementView, error)
}

type SettlementQueries interface {
	List(ctx context.Context, filter SettlementFilter) ([]*SettlementView, error)
}

type settlementQueriesImpl struct {
	store SettlementReadStore
}

func NewSettlementQueries(store SettlementReadStore) SettlementQueries {
	return &settlementQueriesImpl{store: store}
}

// List returns settlements in [From, To), newest first.
func (q *settlementQueriesImpl) List(ctx context.Context, filter SettlementFilter) ([]*SettlementView, error) {
	if !filter.From.Before(filter.To) {
		return nil, errs.Wrap(ErrInvalidRange, "from must be before to")
	}
	if filter.To.Sub(filter.From) > MaxAuditRange {
		return nil, errs.Wrap(ErrInvalidRange, "range exceeds 31 days")
	}

	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	// #nosec G115 -- limit is bounded by MaxListLimit
	return q.store.ListByEstablishment(ctx, filter.EstablishmentID, filter.From, filter.To, int32(limit))
}
