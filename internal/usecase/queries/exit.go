package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExitView is the latest payment attempt of a session joined with its session data.
type ExitView struct {
	AttemptID      uuid.UUID  `json:"attempt_id"`
	SessionID      uuid.UUID  `json:"session_id"`
	Plate          string     `json:"plate"`
	SpotID         *uuid.UUID `json:"spot_id,omitempty"`
	EntryAt        time.Time  `json:"entry_at"`
	ExitAt         *time.Time `json:"exit_at,omitempty"`
	Method         *string    `json:"method,omitempty"`
	AmountCents    int64      `json:"amount_cents"`
	Basis          string     `json:"basis"`
	Status         string     `json:"status"`
	ExternalRef    *string    `json:"external_ref,omitempty"`
	CheckoutURL    *string    `json:"checkout_url,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	Warnings       []string   `json:"warnings"`
	RequiresReview bool       `json:"requires_review"`
	SettlementID   *uuid.UUID `json:"settlement_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ExitReadStore interface {
	LatestBySession(ctx context.Context, sessionID uuid.UUID) (*ExitView, error)
	EstablishmentOf(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

type ExitQueries interface {
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*ExitView, error)
	// EstablishmentOf returns the establishment a session belongs to.
	EstablishmentOf(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

type exitQueriesImpl struct {
	store ExitReadStore
}

func NewExitQueries(store ExitReadStore) ExitQueries {
	return &exitQueriesImpl{store: store}
}

func (q *exitQueriesImpl) GetBySession(ctx context.Context, sessionID uuid.UUID) (*ExitView, error) {
	return q.store.LatestBySession(ctx, sessionID)
}

func (q *exitQueriesImpl) EstablishmentOf(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	return q.store.EstablishmentOf(ctx, sessionID)
}
