package converter

import (
	"parking-settlement/internal/domain/subscription"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"
)

func SubscriptionToDomain(row sqlc.FindActiveSubscriptionForSpotRow) *subscription.Subscription {
	return &subscription.Subscription{
		ID:       row.ID,
		SpotID:   row.SpotID,
		Plates:   row.Plates,
		StartsOn: pgconv.DateFromPgtype(row.StartsOn),
		EndsOn:   pgconv.DateFromPgtype(row.EndsOn),
		Active:   row.Active,
	}
}
