//go:build unit || e2e

package builder

import (
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/tariff"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AttemptBuilder struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	Method         *payment.Method
	Amount         money.Money
	Basis          tariff.Basis
	Status         payment.Status
	External       *payment.ExternalReference
	Warnings       []string
	RequiresReview bool
	OperatorID     *uuid.UUID
	SettlementID   *uuid.UUID
	CreatedAt      time.Time
}

func NewAttemptBuilder() *AttemptBuilder {
	return &AttemptBuilder{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Amount:    money.FromCents(20000),
		Basis:     tariff.BasisHourly,
		Status:    payment.StatusFeeComputed,
		Warnings:  []string{},
		CreatedAt: time.Date(2025, 3, 10, 10, 45, 0, 0, time.UTC),
	}
}

func (b *AttemptBuilder) With(mutate func(*AttemptBuilder)) *AttemptBuilder {
	mutate(b)
	return b
}

func (b *AttemptBuilder) ForSession(sessionID uuid.UUID) *AttemptBuilder {
	b.SessionID = sessionID
	return b
}

func (b *AttemptBuilder) WithMethod(m payment.Method, status payment.Status) *AttemptBuilder {
	b.Method = &m
	b.Status = status
	return b
}

// AwaitingExternal puts the attempt on qr with a provider reference expiring at expiresAt.
func (b *AttemptBuilder) AwaitingExternal(ref string, expiresAt time.Time) *AttemptBuilder {
	m := payment.MethodQR
	b.Method = &m
	b.Status = payment.StatusAwaitingExternalConfirmation
	b.External = &payment.ExternalReference{
		Ref:         ref,
		CheckoutURL: "https://checkout.example.com/" + ref,
		ExpiresAt:   expiresAt,
	}
	return b
}

func (b *AttemptBuilder) BuildDomain() *payment.Attempt {
	return payment.ReconstructAttempt(payment.AttemptSnapshot{
		ID:             b.ID,
		SessionID:      b.SessionID,
		Method:         b.Method,
		Amount:         b.Amount,
		Basis:          b.Basis,
		Status:         b.Status,
		External:       b.External,
		Warnings:       b.Warnings,
		RequiresReview: b.RequiresReview,
		OperatorID:     b.OperatorID,
		SettlementID:   b.SettlementID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	})
}

func (b *AttemptBuilder) BuildInfra() sqlc.PaymentAttempts {
	row := sqlc.PaymentAttempts{
		ID:             b.ID,
		SessionID:      b.SessionID,
		AmountCents:    b.Amount.Cents(),
		Basis:          b.Basis.String(),
		Status:         b.Status.String(),
		Warnings:       b.Warnings,
		RequiresReview: b.RequiresReview,
		OperatorID:     pgconv.UUIDPtrToPgtype(b.OperatorID),
		SettlementID:   pgconv.UUIDPtrToPgtype(b.SettlementID),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.Method != nil {
		row.Method = pgtype.Text{String: b.Method.String(), Valid: true}
	}
	if b.External != nil {
		row.ExternalRef = pgtype.Text{String: b.External.Ref, Valid: true}
		row.CheckoutUrl = pgtype.Text{String: b.External.CheckoutURL, Valid: true}
		row.ExpiresAt = pgtype.Timestamptz{Time: b.External.ExpiresAt, Valid: true}
	}
	return row
}
