package readstore

import (
	"context"

	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SessionReadQueries interface {
	FindOpenParkingSession(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOpenParkingSessionParams) (sqlc.ParkingSessions, error)
	GetParkingSessionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSessions, error)
}

type SessionReadStore struct {
	queries SessionReadQueries
	db      sqlc.DBTX
}

func NewSessionReadStore(queries SessionReadQueries, db sqlc.DBTX) *SessionReadStore {
	return &SessionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SessionReadStore) FindOpen(ctx context.Context, establishmentID uuid.UUID, plate string, spotID *uuid.UUID) (*session.ParkingSession, error) {
	row, err := r.queries.FindOpenParkingSession(ctx, r.db, sqlc.FindOpenParkingSessionParams{
		EstablishmentID: establishmentID,
		Plate:           session.NormalizePlate(plate),
		SpotID:          pgconv.UUIDPtrToPgtype(spotID),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("open parking session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open parking session", err)
	}
	return converter.SessionToDomain(row), nil
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*session.ParkingSession, error) {
	row, err := r.queries.GetParkingSessionByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking session", err)
	}
	return converter.SessionToDomain(row), nil
}
