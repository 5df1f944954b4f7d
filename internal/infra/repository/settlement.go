package repository

import (
	"context"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
)

type SettlementWriteQueries interface {
	InsertSettlement(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSettlementParams) (sqlc.Settlements, error)
}

type SettlementRepository struct {
	queries SettlementWriteQueries
	db      sqlc.DBTX
}

func NewSettlementRepository(queries SettlementWriteQueries, db sqlc.DBTX) *SettlementRepository {
	return &SettlementRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettlementRepository) Record(ctx context.Context, rec *payment.SettlementRecord) (*payment.SettlementRecord, error) {
	row, err := r.queries.InsertSettlement(ctx, r.db, converter.SettlementToInsertParams(rec))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to record settlement", err)
	}
	return converter.SettlementToDomain(row), nil
}
