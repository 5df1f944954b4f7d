package payment

import (
	"errors"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/tariff"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid payment attempt transition")
	ErrMethodMismatch    = errors.New("payment attempt uses a different method")
)

type Status string

const (
	StatusFeeComputed                  Status = "fee_computed"
	StatusMethodSelected               Status = "method_selected"
	StatusAwaitingExternalConfirmation Status = "awaiting_external_confirmation"
	StatusReadyToSettle                Status = "ready_to_settle"
	StatusSettled                      Status = "settled"
	StatusAborted                      Status = "aborted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusSettled || s == StatusAborted
}

var transitions = map[Status][]Status{
	StatusFeeComputed:                  {StatusMethodSelected, StatusReadyToSettle, StatusAborted},
	StatusMethodSelected:               {StatusMethodSelected, StatusAwaitingExternalConfirmation, StatusReadyToSettle, StatusAborted},
	StatusAwaitingExternalConfirmation: {StatusMethodSelected, StatusReadyToSettle, StatusAborted},
	StatusReadyToSettle:                {StatusSettled, StatusAborted},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ExternalReference is the provider-side handle for qr and link payments.
type ExternalReference struct {
	Ref         string
	CheckoutURL string
	ExpiresAt   time.Time
}

// Attempt is the in-progress payment selection for one session's exit. The
// amount is fixed when the attempt is created and reused across method switches.
type Attempt struct {
	id             uuid.UUID
	sessionID      uuid.UUID
	method         *Method
	amount         money.Money
	basis          tariff.Basis
	status         Status
	external       *ExternalReference
	warnings       []string
	requiresReview bool
	operatorID     *uuid.UUID
	settlementID   *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAttempt(sessionID uuid.UUID, amount money.Money, basis tariff.Basis, warnings []string, requiresReview bool, operatorID *uuid.UUID, now time.Time) *Attempt {
	return &Attempt{
		id:             uuid.New(),
		sessionID:      sessionID,
		amount:         amount,
		basis:          basis,
		status:         StatusFeeComputed,
		warnings:       warnings,
		requiresReview: requiresReview,
		operatorID:     operatorID,
		createdAt:      now,
		updatedAt:      now,
	}
}

type AttemptSnapshot struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	Method         *Method
	Amount         money.Money
	Basis          tariff.Basis
	Status         Status
	External       *ExternalReference
	Warnings       []string
	RequiresReview bool
	OperatorID     *uuid.UUID
	SettlementID   *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructAttempt(s AttemptSnapshot) *Attempt {
	return &Attempt{
		id:             s.ID,
		sessionID:      s.SessionID,
		method:         s.Method,
		amount:         s.Amount,
		basis:          s.Basis,
		status:         s.Status,
		external:       s.External,
		warnings:       s.Warnings,
		requiresReview: s.RequiresReview,
		operatorID:     s.OperatorID,
		settlementID:   s.SettlementID,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (a *Attempt) transition(to Status, now time.Time) error {
	if !CanTransition(a.status, to) {
		return ErrInvalidTransition
	}
	a.status = to
	a.updatedAt = now
	return nil
}

// SelectMethod records the operator's choice. Switching away from an external
// method drops the previous reference, which is returned so the caller can
// cancel it with the provider.
func (a *Attempt) SelectMethod(m Method, operatorID *uuid.UUID, now time.Time) (*ExternalReference, error) {
	if err := a.transition(StatusMethodSelected, now); err != nil {
		return nil, err
	}
	previous := a.external
	a.method = &m
	a.external = nil
	if operatorID != nil {
		a.operatorID = operatorID
	}
	return previous, nil
}

// AttachExternalReference parks the attempt until the provider confirms.
func (a *Attempt) AttachExternalReference(ref ExternalReference, now time.Time) error {
	if a.status != StatusMethodSelected || a.method == nil || !a.method.IsExternal() {
		return ErrInvalidTransition
	}
	if err := a.transition(StatusAwaitingExternalConfirmation, now); err != nil {
		return err
	}
	a.external = &ref
	return nil
}

// ReturnToSelection undoes a rejected external payment. The method and amount
// stay; the dropped reference is returned for cancellation.
func (a *Attempt) ReturnToSelection(now time.Time) (*ExternalReference, error) {
	if a.status != StatusAwaitingExternalConfirmation {
		return nil, ErrInvalidTransition
	}
	if err := a.transition(StatusMethodSelected, now); err != nil {
		return nil, err
	}
	previous := a.external
	a.external = nil
	return previous, nil
}

// MarkReadyToSettle is reached by cash immediately, by transfer after the
// operator confirms, and by qr/link after approval or a manual override.
func (a *Attempt) MarkReadyToSettle(now time.Time) error {
	if a.method == nil {
		return ErrInvalidTransition
	}
	switch *a.method {
	case MethodCash, MethodTransfer:
		if a.status != StatusMethodSelected {
			return ErrInvalidTransition
		}
	case MethodQR, MethodLink:
		if a.status != StatusAwaitingExternalConfirmation {
			return ErrInvalidTransition
		}
	default:
		return ErrUnknownMethod
	}
	return a.transition(StatusReadyToSettle, now)
}

func (a *Attempt) MarkSettled(settlementID uuid.UUID, now time.Time) error {
	if err := a.transition(StatusSettled, now); err != nil {
		return err
	}
	a.settlementID = &settlementID
	return nil
}

func (a *Attempt) Abort(now time.Time) error {
	return a.transition(StatusAborted, now)
}

// IsExpired reports whether a pending external confirmation ran past its deadline.
func (a *Attempt) IsExpired(now time.Time) bool {
	return a.status == StatusAwaitingExternalConfirmation &&
		a.external != nil &&
		!a.external.ExpiresAt.IsZero() &&
		now.After(a.external.ExpiresAt)
}

func (a *Attempt) UsesMethod(m Method) bool {
	return a.method != nil && *a.method == m
}

func (a *Attempt) ID() uuid.UUID                { return a.id }
func (a *Attempt) SessionID() uuid.UUID         { return a.sessionID }
func (a *Attempt) Method() *Method              { return a.method }
func (a *Attempt) Amount() money.Money          { return a.amount }
func (a *Attempt) Basis() tariff.Basis          { return a.basis }
func (a *Attempt) Status() Status               { return a.status }
func (a *Attempt) External() *ExternalReference { return a.external }
func (a *Attempt) Warnings() []string           { return a.warnings }
func (a *Attempt) RequiresReview() bool         { return a.requiresReview }
func (a *Attempt) OperatorID() *uuid.UUID       { return a.operatorID }
func (a *Attempt) SettlementID() *uuid.UUID     { return a.settlementID }
func (a *Attempt) CreatedAt() time.Time         { return a.createdAt }
func (a *Attempt) UpdatedAt() time.Time         { return a.updatedAt }
