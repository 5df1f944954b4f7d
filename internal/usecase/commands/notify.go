package commands

import (
	"context"
	"encoding/json"
	"time"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKindExitEvent = "exit_event"

// Topics published to the UI layer through the notification outbox.
const (
	TopicFeeComputed         = "exit.fee_computed"
	TopicMethodSelected      = "exit.method_selected"
	TopicAwaitingPayment     = "exit.awaiting_confirmation"
	TopicPaymentRejected     = "exit.payment_rejected"
	TopicReadyToSettle       = "exit.ready_to_settle"
	TopicSettled             = "exit.settled"
	TopicAborted             = "exit.aborted"
	TopicClosedWithoutCharge = "exit.closed_without_charge"
)

type exitEvent struct {
	SessionID   uuid.UUID  `json:"session_id"`
	AttemptID   *uuid.UUID `json:"attempt_id,omitempty"`
	Status      string     `json:"status,omitempty"`
	Method      string     `json:"method,omitempty"`
	AmountCents int64      `json:"amount_cents"`
	Basis       string     `json:"basis,omitempty"`
	CheckoutURL string     `json:"checkout_url,omitempty"`
	At          time.Time  `json:"at"`
}

func attemptEvent(a *payment.Attempt, at time.Time) exitEvent {
	id := a.ID()
	ev := exitEvent{
		SessionID:   a.SessionID(),
		AttemptID:   &id,
		Status:      a.Status().String(),
		AmountCents: a.Amount().Cents(),
		Basis:       string(a.Basis()),
		At:          at,
	}
	if m := a.Method(); m != nil {
		ev.Method = m.String()
	}
	if ext := a.External(); ext != nil {
		ev.CheckoutURL = ext.CheckoutURL
	}
	return ev
}

func enqueue(ctx context.Context, tx shared.Tx, topic string, ev exitEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, notificationKindExitEvent, topic, payload, ev.At)
}
