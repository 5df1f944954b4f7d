package converter

import (
	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/reservation"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"
)

func ReservationToDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	window, err := reservation.NewWindow(pgconv.TimeFromPgtype(row.WindowStart), pgconv.TimeFromPgtype(row.WindowEnd))
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(row.ID, row.Code, row.Plate, row.EstablishmentID, money.FromCents(row.PaidCents), window), nil
}
