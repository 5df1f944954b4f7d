package repository

import (
	"context"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AttemptWriteQueries interface {
	CreatePaymentAttempt(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentAttemptParams) error
	LockLivePaymentAttemptBySession(ctx context.Context, db sqlc.DBTX, sessionID uuid.UUID) (sqlc.PaymentAttempts, error)
	LockPaymentAttemptByExternalRef(ctx context.Context, db sqlc.DBTX, externalRef pgtype.Text) (sqlc.PaymentAttempts, error)
	LockPaymentAttemptByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PaymentAttempts, error)
	UpdatePaymentAttempt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentAttemptParams) (int64, error)
}

type AttemptRepository struct {
	queries AttemptWriteQueries
	db      sqlc.DBTX
}

func NewAttemptRepository(queries AttemptWriteQueries, db sqlc.DBTX) *AttemptRepository {
	return &AttemptRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with DUPLICATE_KEY when the session already has a live attempt.
func (r *AttemptRepository) Create(ctx context.Context, a *payment.Attempt) error {
	if err := r.queries.CreatePaymentAttempt(ctx, r.db, converter.AttemptToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create payment attempt", err)
	}
	return nil
}

func (r *AttemptRepository) LockLiveBySession(ctx context.Context, sessionID uuid.UUID) (*payment.Attempt, error) {
	row, err := r.queries.LockLivePaymentAttemptBySession(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock live payment attempt", err)
	}
	return converter.AttemptToDomain(row), nil
}

func (r *AttemptRepository) LockByExternalRef(ctx context.Context, ref string) (*payment.Attempt, error) {
	row, err := r.queries.LockPaymentAttemptByExternalRef(ctx, r.db, pgconv.StringToPgtype(ref))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment attempt by external reference", err)
	}
	return converter.AttemptToDomain(row), nil
}

func (r *AttemptRepository) LockByID(ctx context.Context, id uuid.UUID) (*payment.Attempt, error) {
	row, err := r.queries.LockPaymentAttemptByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment attempt", err)
	}
	return converter.AttemptToDomain(row), nil
}

func (r *AttemptRepository) Update(ctx context.Context, a *payment.Attempt, from payment.Status) error {
	affected, err := r.queries.UpdatePaymentAttempt(ctx, r.db, converter.AttemptToUpdateParams(a, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment attempt", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment attempt changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
