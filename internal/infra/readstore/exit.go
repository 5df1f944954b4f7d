package readstore

import (
	"context"

	"parking-settlement/internal/infra"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"
	"parking-settlement/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExitViewQueries interface {
	GetLatestPaymentAttemptView(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) (sqlc.GetLatestPaymentAttemptViewRow, error)
	GetParkingSessionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSessions, error)
}

type ExitReadStore struct {
	queries ExitViewQueries
	db      sqlc.DBTX
}

func NewExitReadStore(queries ExitViewQueries, db sqlc.DBTX) *ExitReadStore {
	return &ExitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExitReadStore) LatestBySession(ctx context.Context, sessionID uuid.UUID) (*queries.ExitView, error) {
	row, err := r.queries.GetLatestPaymentAttemptView(ctx, r.db, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load exit view", err)
	}

	return rowToExitView(row), nil
}

func (r *ExitReadStore) EstablishmentOf(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	row, err := r.queries.GetParkingSessionByID(ctx, r.db, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("parking session not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to load parking session", err)
	}
	return row.EstablishmentID, nil
}

func rowToExitView(row sqlc.GetLatestPaymentAttemptViewRow) *queries.ExitView {
	warnings := row.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &queries.ExitView{
		AttemptID:      row.ID,
		SessionID:      row.SessionID,
		Plate:          row.Plate,
		SpotID:         pgconv.UUIDPtrFromPgtype(row.SpotID),
		EntryAt:        pgconv.TimeFromPgtype(row.EntryAt),
		ExitAt:         pgconv.TimePtrFromPgtype(row.ExitAt),
		Method:         pgconv.StringPtrFromPgtype(row.Method),
		AmountCents:    row.AmountCents,
		Basis:          row.Basis,
		Status:         row.Status,
		ExternalRef:    pgconv.StringPtrFromPgtype(row.ExternalRef),
		CheckoutURL:    pgconv.StringPtrFromPgtype(row.CheckoutUrl),
		ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiresAt),
		Warnings:       warnings,
		RequiresReview: row.RequiresReview,
		SettlementID:   pgconv.UUIDPtrFromPgtype(row.SettlementID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
