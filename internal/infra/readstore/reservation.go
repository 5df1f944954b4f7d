package readstore

import (
	"context"
	"time"

	"parking-settlement/internal/domain/reservation"
	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	FindActiveReservationForEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveReservationForEntryParams) (sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActiveReservation returns nil without error when no reservation backs the entry.
func (r *ReservationReadStore) FindActiveReservation(ctx context.Context, plate string, establishmentID uuid.UUID, entryAt time.Time) (*reservation.Reservation, error) {
	row, err := r.queries.FindActiveReservationForEntry(ctx, r.db, sqlc.FindActiveReservationForEntryParams{
		EstablishmentID: establishmentID,
		Plate:           session.NormalizePlate(plate),
		EntryAt:         pgconv.TimeToPgtype(entryAt),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err, infra.KindDBFailure)
	}
	return res, nil
}
