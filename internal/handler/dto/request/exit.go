package request

import (
	"time"

	"parking-settlement/internal/domain/payment"

	"github.com/google/uuid"
)

type InitiateExitRequest struct {
	Plate     string     `json:"plate" binding:"required,max=16"`
	SpotID    *uuid.UUID `json:"spotId,omitempty"`
	Supersede bool       `json:"supersede"`
}

type SelectPaymentMethodRequest struct {
	Method string `json:"method" binding:"required,oneof=cash transfer qr link"`
}

func (r SelectPaymentMethodRequest) ToMethod() (payment.Method, error) {
	return payment.ParseMethod(r.Method)
}

// PaymentConfirmationRequest is posted by the payment provider integration.
type PaymentConfirmationRequest struct {
	ExternalRef string `json:"externalRef" binding:"required,max=255"`
	Outcome     string `json:"outcome" binding:"required,oneof=pending approved rejected expired"`
}

func (r PaymentConfirmationRequest) ToOutcome() (payment.ExternalStatus, error) {
	return payment.ParseExternalStatus(r.Outcome)
}

type SettlementListQuery struct {
	EstablishmentID string    `form:"establishmentId" binding:"omitempty,uuid"`
	From            time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To              time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit           int       `form:"limit" binding:"omitempty,min=1,max=500"`
}
