package readstore

import (
	"context"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AttemptReadQueries interface {
	GetLivePaymentAttemptBySession(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) (sqlc.PaymentAttempts, error)
}

type AttemptReadStore struct {
	queries AttemptReadQueries
	db      sqlc.DBTX
}

func NewAttemptReadStore(queries AttemptReadQueries, db sqlc.DBTX) *AttemptReadStore {
	return &AttemptReadStore{
		queries: queries,
		db:      db,
	}
}

// LiveBySession returns nil without error when the session has no live attempt.
func (r *AttemptReadStore) LiveBySession(ctx context.Context, sessionID uuid.UUID) (*payment.Attempt, error) {
	row, err := r.queries.GetLivePaymentAttemptBySession(ctx, r.db, sessionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load live payment attempt", err)
	}
	return converter.AttemptToDomain(row), nil
}
