package response

import (
	"time"

	"parking-settlement/internal/usecase/commands"
	"parking-settlement/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExitQuoteResponse struct {
	SessionID      uuid.UUID  `json:"sessionId"`
	AttemptID      *uuid.UUID `json:"attemptId,omitempty"`
	Plate          string     `json:"plate"`
	AmountCents    int64      `json:"amountCents"`
	Basis          string     `json:"basis"`
	Status         string     `json:"status,omitempty"`
	Units          int64      `json:"units"`
	Warnings       []string   `json:"warnings"`
	RequiresReview bool       `json:"requiresReview"`
	Resumed        bool       `json:"resumed"`
	Closed         bool       `json:"closed"`
}

func FromExitQuote(q *commands.ExitQuote) *ExitQuoteResponse {
	res := &ExitQuoteResponse{}
	copyFields(res, q)
	res.AmountCents = q.Amount.Cents()
	res.Basis = q.Basis.String()
	res.Status = q.Status.String()
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	return res
}

type AttemptStatusResponse struct {
	SessionID    uuid.UUID  `json:"sessionId"`
	AttemptID    uuid.UUID  `json:"attemptId"`
	Status       string     `json:"status"`
	Method       *string    `json:"method,omitempty"`
	AmountCents  int64      `json:"amountCents"`
	Basis        string     `json:"basis"`
	ExternalRef  string     `json:"externalRef,omitempty"`
	CheckoutURL  string     `json:"checkoutUrl,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	SettlementID *uuid.UUID `json:"settlementId,omitempty"`
}

func FromAttemptStatus(r *commands.AttemptStatusResult) *AttemptStatusResponse {
	res := &AttemptStatusResponse{}
	copyFields(res, r)
	res.Status = r.Status.String()
	res.AmountCents = r.Amount.Cents()
	res.Basis = r.Basis.String()
	res.Method = nil
	if r.Method != nil {
		m := r.Method.String()
		res.Method = &m
	}
	return res
}

type ExitViewResponse struct {
	AttemptID      uuid.UUID  `json:"attemptId"`
	SessionID      uuid.UUID  `json:"sessionId"`
	Plate          string     `json:"plate"`
	SpotID         *uuid.UUID `json:"spotId,omitempty"`
	EntryAt        time.Time  `json:"entryAt"`
	ExitAt         *time.Time `json:"exitAt,omitempty"`
	Method         *string    `json:"method,omitempty"`
	AmountCents    int64      `json:"amountCents"`
	Basis          string     `json:"basis"`
	Status         string     `json:"status"`
	ExternalRef    *string    `json:"externalRef,omitempty"`
	CheckoutURL    *string    `json:"checkoutUrl,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	Warnings       []string   `json:"warnings"`
	RequiresReview bool       `json:"requiresReview"`
	SettlementID   *uuid.UUID `json:"settlementId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromExitView(v *queries.ExitView) *ExitViewResponse {
	res := &ExitViewResponse{}
	copyFields(res, v)
	return res
}
