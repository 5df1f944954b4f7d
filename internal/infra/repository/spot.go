package repository

import (
	"context"

	"parking-settlement/internal/domain/spot"
	"parking-settlement/internal/infra"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpotQueries interface {
	GetSpotTemplateID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (pgtype.UUID, error)
	UpdateSpotState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSpotStateParams) (int64, error)
}

// SpotRepository is the spot registry as seen from exits: template lookup and occupancy.
type SpotRepository struct {
	queries SpotQueries
	db      sqlc.DBTX
}

func NewSpotRepository(queries SpotQueries, db sqlc.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SpotRepository) TemplateForSpot(ctx context.Context, spotID uuid.UUID) (*uuid.UUID, error) {
	templateID, err := r.queries.GetSpotTemplateID(ctx, r.db, spotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load spot template", err)
	}
	return pgconv.UUIDPtrFromPgtype(templateID), nil
}

func (r *SpotRepository) SetSpotState(ctx context.Context, spotID uuid.UUID, state spot.State) error {
	affected, err := r.queries.UpdateSpotState(ctx, r.db, sqlc.UpdateSpotStateParams{
		ID:    spotID,
		State: string(state),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update spot state", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}
