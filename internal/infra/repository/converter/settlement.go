package converter

import (
	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/payment"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"
)

func SettlementToInsertParams(rec *payment.SettlementRecord) sqlc.InsertSettlementParams {
	return sqlc.InsertSettlementParams{
		ID:          rec.ID,
		SessionID:   rec.SessionID,
		AttemptID:   rec.AttemptID,
		AmountCents: rec.Amount.Cents(),
		Method:      rec.Method.String(),
		SettledAt:   pgconv.TimeToPgtype(rec.SettledAt),
		OperatorID:  pgconv.UUIDPtrToPgtype(rec.OperatorID),
	}
}

func SettlementToDomain(row sqlc.Settlements) *payment.SettlementRecord {
	return &payment.SettlementRecord{
		ID:         row.ID,
		SessionID:  row.SessionID,
		AttemptID:  row.AttemptID,
		Amount:     money.FromCents(row.AmountCents),
		Method:     payment.Method(row.Method),
		SettledAt:  pgconv.TimeFromPgtype(row.SettledAt),
		OperatorID: pgconv.UUIDPtrFromPgtype(row.OperatorID),
	}
}
