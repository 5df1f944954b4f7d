//go:build unit || e2e

package builder

import (
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/domain/tariff"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionBuilder struct {
	ID              uuid.UUID
	EstablishmentID uuid.UUID
	Plate           string
	Category        string
	SpotID          *uuid.UUID
	EntryAt         time.Time
	Unit            tariff.BillingUnit
	AgreedPrice     money.Money
	Deadline        *time.Time
	ExitAt          *time.Time
	SettlementID    *uuid.UUID
}

func NewSessionBuilder() *SessionBuilder {
	spotID := uuid.New()
	return &SessionBuilder{
		ID:              uuid.New(),
		EstablishmentID: uuid.New(),
		Plate:           "AB123CD",
		Category:        "car",
		SpotID:          &spotID,
		EntryAt:         time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Unit:            tariff.UnitHourly,
		AgreedPrice:     money.Zero(),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithUnit(unit tariff.BillingUnit) *SessionBuilder {
	b.Unit = unit
	return b
}

func (b *SessionBuilder) WithoutSpot() *SessionBuilder {
	b.SpotID = nil
	return b
}

func (b *SessionBuilder) AsClosed(at time.Time) *SessionBuilder {
	b.ExitAt = &at
	return b
}

func (b *SessionBuilder) BuildDomain() *session.ParkingSession {
	return session.Reconstruct(session.Snapshot{
		ID:              b.ID,
		EstablishmentID: b.EstablishmentID,
		Plate:           b.Plate,
		Category:        b.Category,
		SpotID:          b.SpotID,
		EntryAt:         b.EntryAt,
		Unit:            b.Unit,
		AgreedPrice:     b.AgreedPrice,
		Deadline:        b.Deadline,
		ExitAt:          b.ExitAt,
		SettlementID:    b.SettlementID,
	})
}

func (b *SessionBuilder) BuildInfra() sqlc.ParkingSessions {
	return sqlc.ParkingSessions{
		ID:               b.ID,
		EstablishmentID:  b.EstablishmentID,
		Plate:            b.Plate,
		VehicleCategory:  b.Category,
		SpotID:           pgconv.UUIDPtrToPgtype(b.SpotID),
		EntryAt:          pgconv.TimeToPgtype(b.EntryAt),
		BillingUnit:      b.Unit.String(),
		AgreedPriceCents: b.AgreedPrice.Cents(),
		DeadlineAt:       pgconv.TimePtrToPgtype(b.Deadline),
		ExitAt:           pgconv.TimePtrToPgtype(b.ExitAt),
		SettlementID:     pgconv.UUIDPtrToPgtype(b.SettlementID),
		CreatedAt:        pgtype.Timestamptz{Time: b.EntryAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: b.EntryAt, Valid: true},
	}
}
