package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/domain/tariff"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/pkg/clock"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/shared"

	"github.com/google/uuid"
)

type InitiateExitParams struct {
	EstablishmentID uuid.UUID
	Plate           string
	SpotID          *uuid.UUID
	// Supersede aborts a live attempt instead of resuming it.
	Supersede  bool
	OperatorID *uuid.UUID
}

type ExitQuote struct {
	SessionID      uuid.UUID
	AttemptID      *uuid.UUID
	Plate          string
	Amount         money.Money
	Basis          tariff.Basis
	Status         payment.Status
	Units          int64
	Warnings       []string
	RequiresReview bool
	// Resumed is set when an existing live attempt was returned unchanged.
	Resumed bool
	// Closed is set when the exit finished without a payment attempt.
	Closed bool
}

type AttemptStatusResult struct {
	SessionID    uuid.UUID
	AttemptID    uuid.UUID
	Status       payment.Status
	Method       *payment.Method
	Amount       money.Money
	Basis        tariff.Basis
	ExternalRef  string
	CheckoutURL  string
	ExpiresAt    *time.Time
	SettlementID *uuid.UUID
}

type RetryPolicy struct {
	// Retries is the number of extra provider calls after the first failure.
	Retries int
	Backoff time.Duration
}

type ExitConfig struct {
	ConfirmationTimeout time.Duration
	CreateRetry         RetryPolicy
}

type ExitCommands interface {
	InitiateExit(ctx context.Context, p InitiateExitParams) (*ExitQuote, error)
	SelectPaymentMethod(ctx context.Context, sessionID uuid.UUID, method payment.Method, operatorID *uuid.UUID) (*AttemptStatusResult, error)
	ConfirmTransfer(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error)
	MarkAsPaid(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error)
	ConfirmExternalPayment(ctx context.Context, externalRef string, outcome payment.ExternalStatus) (*AttemptStatusResult, error)
	RefreshExternalStatus(ctx context.Context, sessionID uuid.UUID) (*AttemptStatusResult, error)
	RetrySettlement(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error)
	CancelExit(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error)
}

type exitCommandsImpl struct {
	uow       shared.UnitOfWork
	fees      *FeeComputer
	committer *SettlementCommitter
	gateway   PaymentGateway
	clock     clock.Clock
	cfg       ExitConfig
}

func NewExitCommands(
	uow shared.UnitOfWork,
	fees *FeeComputer,
	committer *SettlementCommitter,
	gateway PaymentGateway,
	clk clock.Clock,
	cfg ExitConfig,
) ExitCommands {
	return &exitCommandsImpl{
		uow:       uow,
		fees:      fees,
		committer: committer,
		gateway:   gateway,
		clock:     clk,
		cfg:       cfg,
	}
}

func (uc *exitCommandsImpl) InitiateExit(ctx context.Context, p InitiateExitParams) (*ExitQuote, error) {
	reads := uc.uow.CommandReads()

	sess, err := reads.OpenSession(ctx, p.EstablishmentID, p.Plate, p.SpotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotFound)
		}
		return nil, err
	}

	live, err := reads.LiveAttemptBySession(ctx, sess.ID())
	if err != nil {
		return nil, err
	}
	if live != nil && !p.Supersede {
		return quoteFromAttempt(sess, live, true), nil
	}

	now := uc.clock.Now()
	fee, err := uc.fees.Compute(ctx, sess, now)
	if err != nil {
		return nil, err
	}

	if fee.CloseDirectly {
		dropped, err := uc.committer.CloseExempt(ctx, sess.ID(), now, fee.Basis)
		if err != nil {
			return nil, err
		}
		uc.cancelExternal(ctx, dropped)
		slog.Info("exit closed without charge", "session_id", sess.ID(), "basis", string(fee.Basis))
		return &ExitQuote{
			SessionID: sess.ID(),
			Plate:     sess.Plate(),
			Amount:    fee.Amount,
			Basis:     fee.Basis,
			Units:     fee.Units,
			Warnings:  fee.Warnings,
			Closed:    true,
		}, nil
	}

	attempt := payment.NewAttempt(sess.ID(), fee.Amount, fee.Basis, fee.Warnings, fee.RequiresReview, p.OperatorID, now)

	var dropped *payment.ExternalReference
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		dropped = nil
		if p.Supersede {
			ref, err := abortLive(ctx, tx, sess.ID(), now)
			if err != nil {
				return err
			}
			dropped = ref
		}
		if err := tx.Attempts().Create(ctx, attempt); err != nil {
			return err
		}
		return enqueue(ctx, tx, TopicFeeComputed, attemptEvent(attempt, now))
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// another request created the live attempt first; hand that one back
			if current, rerr := reads.LiveAttemptBySession(ctx, sess.ID()); rerr == nil && current != nil {
				return quoteFromAttempt(sess, current, true), nil
			}
			return nil, errs.Mark(err, ErrAttemptChanged)
		}
		return nil, err
	}
	uc.cancelExternal(ctx, dropped)

	if fee.RequiresReview {
		slog.Warn("exit attempt requires review",
			"session_id", sess.ID(),
			"attempt_id", attempt.ID(),
			"warnings", fee.Warnings)
	}

	quote := quoteFromAttempt(sess, attempt, false)
	quote.Units = fee.Units
	return quote, nil
}

func (uc *exitCommandsImpl) SelectPaymentMethod(ctx context.Context, sessionID uuid.UUID, method payment.Method, operatorID *uuid.UUID) (*AttemptStatusResult, error) {
	sess, err := uc.sessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var (
		attempt *payment.Attempt
		dropped *payment.ExternalReference
	)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := lockLive(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		from := a.Status()

		prev, err := a.SelectMethod(method, operatorID, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		topic := TopicMethodSelected
		switch method {
		case payment.MethodCash:
			if err := a.MarkReadyToSettle(now); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			topic = TopicReadyToSettle
		case payment.MethodTransfer, payment.MethodQR, payment.MethodLink:
		default:
			return payment.ErrUnknownMethod
		}

		if err := tx.Attempts().Update(ctx, a, from); err != nil {
			return conflictAsChanged(err)
		}
		if err := enqueue(ctx, tx, topic, attemptEvent(a, now)); err != nil {
			return err
		}
		attempt, dropped = a, prev
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.cancelExternal(ctx, dropped)

	switch method {
	case payment.MethodCash:
		return uc.settle(ctx, attempt, operatorID)
	case payment.MethodTransfer:
		return statusFromAttempt(attempt), nil
	case payment.MethodQR, payment.MethodLink:
		return uc.startExternal(ctx, sess, attempt, method)
	default:
		return nil, payment.ErrUnknownMethod
	}
}

// ConfirmTransfer is the human gate for transfers: nothing settles until an operator confirms.
func (uc *exitCommandsImpl) ConfirmTransfer(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error) {
	attempt, err := uc.markReady(ctx, sessionID, func(a *payment.Attempt) error {
		if !a.UsesMethod(payment.MethodTransfer) {
			return errs.Mark(payment.ErrMethodMismatch, ErrInvalidTransition)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.settle(ctx, attempt, operatorID)
}

// MarkAsPaid is the operator override for qr/link payments the provider has not confirmed.
func (uc *exitCommandsImpl) MarkAsPaid(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error) {
	var ref *payment.ExternalReference
	attempt, err := uc.markReady(ctx, sessionID, func(a *payment.Attempt) error {
		m := a.Method()
		if m == nil || !m.IsExternal() {
			return errs.Mark(payment.ErrMethodMismatch, ErrInvalidTransition)
		}
		ref = a.External()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("external payment marked as paid by operator",
		"session_id", sessionID,
		"attempt_id", attempt.ID(),
		"operator_id", operatorID)

	result, err := uc.settle(ctx, attempt, operatorID)
	if err != nil {
		return nil, err
	}
	uc.cancelExternal(ctx, ref)
	return result, nil
}

// ConfirmExternalPayment handles the provider callback. The callback is not
// authenticated, so an approval only counts once the provider reports it too.
func (uc *exitCommandsImpl) ConfirmExternalPayment(ctx context.Context, externalRef string, outcome payment.ExternalStatus) (*AttemptStatusResult, error) {
	if outcome == payment.ExternalApproved {
		verified, err := uc.verifyApproval(ctx, externalRef)
		if err != nil {
			return nil, err
		}
		outcome = verified
	}
	return uc.applyExternalOutcome(ctx, externalRef, outcome)
}

// verifyApproval returns the provider's own status for a claimed approval.
// Finished attempts are not polled; the outcome is a no-op for them anyway.
func (uc *exitCommandsImpl) verifyApproval(ctx context.Context, externalRef string) (payment.ExternalStatus, error) {
	var status payment.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Attempts().LockByExternalRef(ctx, externalRef)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUnknownExternalRef)
			}
			return err
		}
		status = a.Status()
		return nil
	})
	if err != nil {
		return "", err
	}
	if status == payment.StatusSettled || status == payment.StatusAborted {
		return payment.ExternalApproved, nil
	}

	polled, err := uc.gateway.PollStatus(ctx, externalRef)
	if err != nil {
		slog.Warn("payment provider poll failed", "external_ref", externalRef, "error", err.Error())
		return "", errs.Mark(err, ErrProviderUnavailable)
	}
	if polled != payment.ExternalApproved {
		slog.Warn("approval callback not confirmed by the provider",
			"external_ref", externalRef,
			"provider_status", string(polled))
	}
	return polled, nil
}

func (uc *exitCommandsImpl) applyExternalOutcome(ctx context.Context, externalRef string, outcome payment.ExternalStatus) (*AttemptStatusResult, error) {
	now := uc.clock.Now()
	var (
		attempt    *payment.Attempt
		readyToPay bool
		dropped    *payment.ExternalReference
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		readyToPay, dropped = false, nil

		a, err := tx.Attempts().LockByExternalRef(ctx, externalRef)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUnknownExternalRef)
			}
			return err
		}
		attempt = a

		switch a.Status() {
		case payment.StatusSettled:
			return nil
		case payment.StatusAborted:
			if outcome == payment.ExternalApproved {
				slog.Warn("provider approved a payment for an aborted attempt; refund or review required",
					"attempt_id", a.ID(),
					"session_id", a.SessionID(),
					"external_ref", externalRef)
			}
			return nil
		case payment.StatusReadyToSettle:
			readyToPay = outcome == payment.ExternalApproved
			return nil
		case payment.StatusAwaitingExternalConfirmation:
		default:
			return errs.Mark(payment.ErrInvalidTransition, ErrInvalidTransition)
		}

		from := a.Status()
		topic := ""
		switch outcome {
		case payment.ExternalApproved:
			if err := a.MarkReadyToSettle(now); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			topic, readyToPay = TopicReadyToSettle, true
		case payment.ExternalRejected:
			// a rejection is recoverable: keep the fee and let the operator pick again
			ref, err := a.ReturnToSelection(now)
			if err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			topic, dropped = TopicPaymentRejected, ref
		case payment.ExternalExpired:
			if err := a.Abort(now); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			topic = TopicAborted
		case payment.ExternalPending:
			if !a.IsExpired(now) {
				return nil
			}
			if err := a.Abort(now); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			topic = TopicAborted
		default:
			return payment.ErrUnknownExternalStatus
		}

		if err := tx.Attempts().Update(ctx, a, from); err != nil {
			return conflictAsChanged(err)
		}
		return enqueue(ctx, tx, topic, attemptEvent(a, now))
	})
	if err != nil {
		return nil, err
	}
	uc.cancelExternal(ctx, dropped)

	if attempt.Status() == payment.StatusAborted && outcome != payment.ExternalApproved {
		slog.Info("external payment attempt aborted",
			"attempt_id", attempt.ID(),
			"external_ref", externalRef,
			"outcome", string(outcome))
	}

	if readyToPay {
		return uc.settle(ctx, attempt, attempt.OperatorID())
	}
	return statusFromAttempt(attempt), nil
}

// RefreshExternalStatus is the client-poll path: it enforces the local expiry,
// then asks the provider and applies its answer.
func (uc *exitCommandsImpl) RefreshExternalStatus(ctx context.Context, sessionID uuid.UUID) (*AttemptStatusResult, error) {
	live, err := uc.uow.CommandReads().LiveAttemptBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if live == nil {
		return nil, ErrNoActiveAttempt
	}

	switch live.Status() {
	case payment.StatusReadyToSettle:
		return uc.settle(ctx, live, live.OperatorID())
	case payment.StatusAwaitingExternalConfirmation:
	default:
		return statusFromAttempt(live), nil
	}

	ref := live.External().Ref
	if live.IsExpired(uc.clock.Now()) {
		result, err := uc.applyExternalOutcome(ctx, ref, payment.ExternalExpired)
		if err != nil {
			return nil, err
		}
		uc.cancelExternal(ctx, live.External())
		return result, nil
	}

	status, err := uc.gateway.PollStatus(ctx, ref)
	if err != nil {
		slog.Warn("payment provider poll failed", "external_ref", ref, "error", err.Error())
		return nil, errs.Mark(err, ErrProviderUnavailable)
	}
	return uc.applyExternalOutcome(ctx, ref, status)
}

// RetrySettlement re-runs the commit for an attempt left at ready_to_settle by a failed commit.
func (uc *exitCommandsImpl) RetrySettlement(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error) {
	live, err := uc.uow.CommandReads().LiveAttemptBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if live == nil {
		return nil, ErrNoActiveAttempt
	}
	if live.Status() != payment.StatusReadyToSettle {
		return nil, errs.Mark(payment.ErrInvalidTransition, ErrInvalidTransition)
	}
	if operatorID == nil {
		operatorID = live.OperatorID()
	}
	return uc.settle(ctx, live, operatorID)
}

// CancelExit aborts the live attempt. The session stays open and the spot untouched.
func (uc *exitCommandsImpl) CancelExit(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*AttemptStatusResult, error) {
	now := uc.clock.Now()
	var attempt *payment.Attempt

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := lockLive(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		from := a.Status()
		if err := a.Abort(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Attempts().Update(ctx, a, from); err != nil {
			return conflictAsChanged(err)
		}
		attempt = a
		return enqueue(ctx, tx, TopicAborted, attemptEvent(a, now))
	})
	if err != nil {
		return nil, err
	}

	slog.Info("exit cancelled", "session_id", sessionID, "attempt_id", attempt.ID(), "operator_id", operatorID)
	uc.cancelExternal(ctx, attempt.External())
	return statusFromAttempt(attempt), nil
}

// markReady moves the live attempt to ready_to_settle after check accepts it.
func (uc *exitCommandsImpl) markReady(ctx context.Context, sessionID uuid.UUID, check func(*payment.Attempt) error) (*payment.Attempt, error) {
	now := uc.clock.Now()
	var attempt *payment.Attempt

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := lockLive(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if err := check(a); err != nil {
			return err
		}
		from := a.Status()
		if err := a.MarkReadyToSettle(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Attempts().Update(ctx, a, from); err != nil {
			return conflictAsChanged(err)
		}
		attempt = a
		return enqueue(ctx, tx, TopicReadyToSettle, attemptEvent(a, now))
	})
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

func (uc *exitCommandsImpl) settle(ctx context.Context, attempt *payment.Attempt, operatorID *uuid.UUID) (*AttemptStatusResult, error) {
	record, err := uc.committer.Commit(ctx, CommitParams{
		SessionID:  attempt.SessionID(),
		AttemptID:  attempt.ID(),
		Amount:     attempt.Amount(),
		Method:     *attempt.Method(),
		At:         uc.clock.Now(),
		OperatorID: operatorID,
	})
	if err != nil {
		return nil, err
	}

	result := statusFromAttempt(attempt)
	result.Status = payment.StatusSettled
	result.SettlementID = &record.ID
	slog.Info("exit settled",
		"session_id", record.SessionID,
		"attempt_id", record.AttemptID,
		"settlement_id", record.ID,
		"method", record.Method.String(),
		"amount_cents", record.Amount.Cents())
	return result, nil
}

// startExternal creates the provider checkout outside any transaction, then
// attaches it. On provider failure the attempt stays at method_selected.
func (uc *exitCommandsImpl) startExternal(ctx context.Context, sess *session.ParkingSession, attempt *payment.Attempt, method payment.Method) (*AttemptStatusResult, error) {
	expiresAt := uc.clock.Now().Add(uc.cfg.ConfirmationTimeout)

	checkout, err := uc.createCheckout(ctx, CheckoutRequest{
		AttemptID:  attempt.ID(),
		SessionID:  sess.ID(),
		Plate:      sess.Plate(),
		Amount:     attempt.Amount(),
		Method:     method,
		ExpiresAt:  expiresAt,
		SelectedAt: attempt.UpdatedAt(),
	})
	if err != nil {
		slog.Warn("payment provider checkout failed; attempt left at method_selected",
			"session_id", sess.ID(),
			"attempt_id", attempt.ID(),
			"method", method.String(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrProviderUnavailable)
	}

	ref := payment.ExternalReference{Ref: checkout.Ref, CheckoutURL: checkout.CheckoutURL, ExpiresAt: expiresAt}
	now := uc.clock.Now()
	var attached *payment.Attempt

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Attempts().LockByID(ctx, attempt.ID())
		if err != nil {
			return err
		}
		if a.Status() != payment.StatusMethodSelected || !a.UsesMethod(method) {
			return ErrAttemptChanged
		}
		if err := a.AttachExternalReference(ref, now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Attempts().Update(ctx, a, payment.StatusMethodSelected); err != nil {
			return conflictAsChanged(err)
		}
		attached = a
		return enqueue(ctx, tx, TopicAwaitingPayment, attemptEvent(a, now))
	})
	if err != nil {
		uc.cancelExternal(ctx, &ref)
		return nil, err
	}

	return statusFromAttempt(attached), nil
}

func (uc *exitCommandsImpl) createCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	var lastErr error
	for try := 0; try <= uc.cfg.CreateRetry.Retries; try++ {
		if try > 0 {
			wait := time.Duration(try) * uc.cfg.CreateRetry.Backoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		checkout, err := uc.gateway.CreateCheckout(ctx, req)
		if err == nil {
			return checkout, nil
		}
		lastErr = err
		slog.Warn("payment provider checkout attempt failed",
			"attempt_id", req.AttemptID,
			"try", try+1,
			"error", err.Error())
	}
	return nil, lastErr
}

// cancelExternal is best effort; a checkout left open simply expires at the provider.
func (uc *exitCommandsImpl) cancelExternal(ctx context.Context, ref *payment.ExternalReference) {
	if ref == nil || ref.Ref == "" {
		return
	}
	if err := uc.gateway.Cancel(ctx, ref.Ref); err != nil {
		slog.Warn("failed to cancel provider checkout", "external_ref", ref.Ref, "error", err.Error())
	}
}

func (uc *exitCommandsImpl) sessionByID(ctx context.Context, sessionID uuid.UUID) (*session.ParkingSession, error) {
	sess, err := uc.uow.CommandReads().SessionByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotFound)
		}
		return nil, err
	}
	if !sess.IsOpen() {
		return nil, ErrSessionClosed
	}
	return sess, nil
}

func lockLive(ctx context.Context, tx shared.Tx, sessionID uuid.UUID) (*payment.Attempt, error) {
	a, err := tx.Attempts().LockLiveBySession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoActiveAttempt)
		}
		return nil, err
	}
	return a, nil
}

// abortLive aborts the session's live attempt, if any, and returns its external reference.
func abortLive(ctx context.Context, tx shared.Tx, sessionID uuid.UUID, now time.Time) (*payment.ExternalReference, error) {
	a, err := tx.Attempts().LockLiveBySession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	from := a.Status()
	if err := a.Abort(now); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}
	if err := tx.Attempts().Update(ctx, a, from); err != nil {
		return nil, conflictAsChanged(err)
	}
	if err := enqueue(ctx, tx, TopicAborted, attemptEvent(a, now)); err != nil {
		return nil, err
	}
	return a.External(), nil
}

func conflictAsChanged(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrAttemptChanged)
	}
	return err
}

func quoteFromAttempt(sess *session.ParkingSession, a *payment.Attempt, resumed bool) *ExitQuote {
	id := a.ID()
	return &ExitQuote{
		SessionID:      sess.ID(),
		AttemptID:      &id,
		Plate:          sess.Plate(),
		Amount:         a.Amount(),
		Basis:          a.Basis(),
		Status:         a.Status(),
		Warnings:       a.Warnings(),
		RequiresReview: a.RequiresReview(),
		Resumed:        resumed,
	}
}

func statusFromAttempt(a *payment.Attempt) *AttemptStatusResult {
	result := &AttemptStatusResult{
		SessionID:    a.SessionID(),
		AttemptID:    a.ID(),
		Status:       a.Status(),
		Method:       a.Method(),
		Amount:       a.Amount(),
		Basis:        a.Basis(),
		SettlementID: a.SettlementID(),
	}
	if ext := a.External(); ext != nil {
		result.ExternalRef = ext.Ref
		result.CheckoutURL = ext.CheckoutURL
		expires := ext.ExpiresAt
		result.ExpiresAt = &expires
	}
	return result
}
