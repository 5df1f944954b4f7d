package commands

import "parking-settlement/internal/pkg/errs"

var (
	ErrSessionNotFound     = errs.New("open parking session not found")
	ErrSessionClosed       = errs.New("parking session is already closed")
	ErrNoActiveAttempt     = errs.New("no active payment attempt")
	ErrUnknownExternalRef  = errs.New("unknown external payment reference")
	ErrInvalidTransition   = errs.New("payment attempt cannot make this transition")
	ErrAttemptChanged      = errs.New("payment attempt changed concurrently")
	ErrProviderUnavailable = errs.New("payment provider unavailable")
	ErrSettlementFailed    = errs.New("settlement failed")
	ErrSettlementMismatch  = errs.New("settlement does not match payment attempt")
)

// Warnings attached to a payment attempt for the operator.
const (
	WarningTariffNotFound      = "tariff_not_found"
	WarningTariffUnavailable   = "tariff_unavailable"
	WarningReservationMissing  = "reservation_missing"
	WarningSubscriptionMissing = "subscription_missing"
	WarningZeroFee             = "zero_fee"
)
