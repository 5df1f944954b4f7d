package payment

import (
	"time"

	"parking-settlement/internal/domain/money"

	"github.com/google/uuid"
)

// SettlementRecord is the durable fact that money was received for a session.
type SettlementRecord struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	AttemptID  uuid.UUID
	Amount     money.Money
	Method     Method
	SettledAt  time.Time
	OperatorID *uuid.UUID
}

func NewSettlementRecord(sessionID, attemptID uuid.UUID, amount money.Money, method Method, at time.Time, operatorID *uuid.UUID) *SettlementRecord {
	return &SettlementRecord{
		ID:         uuid.New(),
		SessionID:  sessionID,
		AttemptID:  attemptID,
		Amount:     amount,
		Method:     method,
		SettledAt:  at,
		OperatorID: operatorID,
	}
}
