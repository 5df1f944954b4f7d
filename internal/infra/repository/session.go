package repository

import (
	"context"
	"time"

	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SessionWriteQueries interface {
	GetParkingSessionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSessions, error)
	CloseParkingSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseParkingSessionParams) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
	db      sqlc.DBTX
}

func NewSessionRepository(queries SessionWriteQueries, db sqlc.DBTX) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*session.ParkingSession, error) {
	row, err := r.queries.GetParkingSessionByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find parking session", err)
	}
	return converter.SessionToDomain(row), nil
}

func (r *SessionRepository) Close(ctx context.Context, id uuid.UUID, at time.Time, settlementID *uuid.UUID) error {
	affected, err := r.queries.CloseParkingSession(ctx, r.db, sqlc.CloseParkingSessionParams{
		ID:           id,
		ExitAt:       pgconv.TimeToPgtype(at),
		SettlementID: pgconv.UUIDPtrToPgtype(settlementID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to close parking session", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("parking session is already closed", nil, infra.KindConflict)
	}
	return nil
}
