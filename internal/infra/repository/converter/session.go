package converter

import (
	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/domain/tariff"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"
)

func SessionToDomain(row sqlc.ParkingSessions) *session.ParkingSession {
	return session.Reconstruct(session.Snapshot{
		ID:              row.ID,
		EstablishmentID: row.EstablishmentID,
		Plate:           row.Plate,
		Category:        row.VehicleCategory,
		SpotID:          pgconv.UUIDPtrFromPgtype(row.SpotID),
		EntryAt:         pgconv.TimeFromPgtype(row.EntryAt),
		Unit:            tariff.BillingUnit(row.BillingUnit),
		AgreedPrice:     money.FromCents(row.AgreedPriceCents),
		Deadline:        pgconv.TimePtrFromPgtype(row.DeadlineAt),
		ExitAt:          pgconv.TimePtrFromPgtype(row.ExitAt),
		SettlementID:    pgconv.UUIDPtrFromPgtype(row.SettlementID),
	})
}
