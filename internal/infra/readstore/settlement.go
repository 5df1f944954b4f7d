package readstore

import (
	"context"
	"time"

	"parking-settlement/internal/infra"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"
	"parking-settlement/internal/usecase/queries"

	"github.com/google/uuid"
)

type SettlementListQueries interface {
	ListSettlementsByEstablishment(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSettlementsByEstablishmentParams) ([]sqlc.ListSettlementsByEstablishmentRow, error)
}

type SettlementReadStore struct {
	queries SettlementListQueries
	db      sqlc.DBTX
}

func NewSettlementReadStore(queries SettlementListQueries, db sqlc.DBTX) *SettlementReadStore {
	return &SettlementReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettlementReadStore) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID, from, to time.Time, limit int32) ([]*queries.SettlementView, error) {
	rows, err := r.queries.ListSettlementsByEstablishment(ctx, r.db, sqlc.ListSettlementsByEstablishmentParams{
		EstablishmentID: establishmentID,
		SettledFrom:     pgconv.TimeToPgtype(from),
		SettledTo:       pgconv.TimeToPgtype(to),
		RowLimit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settlements", err)
	}

	views := make([]*queries.SettlementView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.SettlementView{
			ID:          row.ID,
			SessionID:   row.SessionID,
			AttemptID:   row.AttemptID,
			Plate:       row.Plate,
			SpotID:      pgconv.UUIDPtrFromPgtype(row.SpotID),
			EntryAt:     pgconv.TimeFromPgtype(row.EntryAt),
			ExitAt:      pgconv.TimePtrFromPgtype(row.ExitAt),
			AmountCents: row.AmountCents,
			Method:      row.Method,
			SettledAt:   pgconv.TimeFromPgtype(row.SettledAt),
			OperatorID:  pgconv.UUIDPtrFromPgtype(row.OperatorID),
		})
	}
	return views, nil
}
