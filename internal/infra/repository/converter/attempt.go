package converter

import (
	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/tariff"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func AttemptToDomain(row sqlc.PaymentAttempts) *payment.Attempt {
	return payment.ReconstructAttempt(payment.AttemptSnapshot{
		ID:             row.ID,
		SessionID:      row.SessionID,
		Method:         methodFromPgtype(row.Method),
		Amount:         money.FromCents(row.AmountCents),
		Basis:          tariff.Basis(row.Basis),
		Status:         payment.Status(row.Status),
		External:       externalFromRow(row.ExternalRef, row.CheckoutUrl, row.ExpiresAt),
		Warnings:       row.Warnings,
		RequiresReview: row.RequiresReview,
		OperatorID:     pgconv.UUIDPtrFromPgtype(row.OperatorID),
		SettlementID:   pgconv.UUIDPtrFromPgtype(row.SettlementID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func AttemptToCreateParams(a *payment.Attempt) sqlc.CreatePaymentAttemptParams {
	ref, url, expires := externalToPgtype(a.External())
	warnings := a.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	return sqlc.CreatePaymentAttemptParams{
		ID:             a.ID(),
		SessionID:      a.SessionID(),
		Method:         methodToPgtype(a.Method()),
		AmountCents:    a.Amount().Cents(),
		Basis:          string(a.Basis()),
		Status:         a.Status().String(),
		ExternalRef:    ref,
		CheckoutUrl:    url,
		ExpiresAt:      expires,
		Warnings:       warnings,
		RequiresReview: a.RequiresReview(),
		OperatorID:     pgconv.UUIDPtrToPgtype(a.OperatorID()),
		SettlementID:   pgconv.UUIDPtrToPgtype(a.SettlementID()),
		CreatedAt:      pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AttemptToUpdateParams(a *payment.Attempt, from payment.Status) sqlc.UpdatePaymentAttemptParams {
	ref, url, expires := externalToPgtype(a.External())
	return sqlc.UpdatePaymentAttemptParams{
		Method:         methodToPgtype(a.Method()),
		Status:         a.Status().String(),
		ExternalRef:    ref,
		CheckoutUrl:    url,
		ExpiresAt:      expires,
		OperatorID:     pgconv.UUIDPtrToPgtype(a.OperatorID()),
		SettlementID:   pgconv.UUIDPtrToPgtype(a.SettlementID()),
		UpdatedAt:      pgconv.TimeToPgtype(a.UpdatedAt()),
		ID:             a.ID(),
		ExpectedStatus: from.String(),
	}
}

func methodFromPgtype(t pgtype.Text) *payment.Method {
	if !t.Valid {
		return nil
	}
	m := payment.Method(t.String)
	return &m
}

func methodToPgtype(m *payment.Method) pgtype.Text {
	if m == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: m.String(), Valid: true}
}

func externalFromRow(ref, url pgtype.Text, expires pgtype.Timestamptz) *payment.ExternalReference {
	if !ref.Valid {
		return nil
	}
	return &payment.ExternalReference{
		Ref:         ref.String,
		CheckoutURL: pgconv.StringFromPgtype(url),
		ExpiresAt:   pgconv.TimeFromPgtype(expires),
	}
}

func externalToPgtype(ext *payment.ExternalReference) (pgtype.Text, pgtype.Text, pgtype.Timestamptz) {
	if ext == nil {
		return pgtype.Text{}, pgtype.Text{}, pgtype.Timestamptz{}
	}
	return pgconv.StringToPgtype(ext.Ref), pgconv.StringToPgtype(ext.CheckoutURL), pgconv.TimePtrToPgtype(&ext.ExpiresAt)
}
