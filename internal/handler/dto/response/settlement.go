package response

import (
	"time"

	"parking-settlement/internal/usecase/queries"

	"github.com/google/uuid"
)

type SettlementResponse struct {
	ID          uuid.UUID  `json:"id"`
	SessionID   uuid.UUID  `json:"sessionId"`
	AttemptID   uuid.UUID  `json:"attemptId"`
	Plate       string     `json:"plate"`
	SpotID      *uuid.UUID `json:"spotId,omitempty"`
	EntryAt     time.Time  `json:"entryAt"`
	ExitAt      *time.Time `json:"exitAt,omitempty"`
	AmountCents int64      `json:"amountCents"`
	Method      string     `json:"method"`
	SettledAt   time.Time  `json:"settledAt"`
	OperatorID  *uuid.UUID `json:"operatorId,omitempty"`
}

func FromSettlementList(items []*queries.SettlementView) []*SettlementResponse {
	res := make([]*SettlementResponse, len(items))
	for i, it := range items {
		res[i] = &SettlementResponse{}
		copyFields(res[i], it)
	}
	return res
}
