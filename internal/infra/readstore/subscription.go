package readstore

import (
	"context"
	"time"

	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/domain/subscription"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriptionReadQueries interface {
	FindActiveSubscriptionForSpot(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveSubscriptionForSpotParams) (sqlc.FindActiveSubscriptionForSpotRow, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionReadQueries
	db      sqlc.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionReadQueries, db sqlc.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActiveSubscription returns nil without error when nothing covers the plate on that spot.
func (r *SubscriptionReadStore) FindActiveSubscription(ctx context.Context, plate string, spotID uuid.UUID, at time.Time) (*subscription.Subscription, error) {
	row, err := r.queries.FindActiveSubscriptionForSpot(ctx, r.db, sqlc.FindActiveSubscriptionForSpotParams{
		SpotID: spotID,
		OnDate: pgconv.DateToPgtype(at),
		Plate:  session.NormalizePlate(plate),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	return converter.SubscriptionToDomain(row), nil
}
