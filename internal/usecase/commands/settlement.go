package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/spot"
	"parking-settlement/internal/domain/tariff"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommitParams struct {
	SessionID  uuid.UUID
	AttemptID  uuid.UUID
	Amount     money.Money
	Method     payment.Method
	At         time.Time
	OperatorID *uuid.UUID
}

// SettlementCommitter turns a ready-to-settle attempt into a durable settlement.
// The record is written before the session is closed, both in one transaction;
// the spot is released only after that transaction commits.
type SettlementCommitter struct {
	uow   shared.UnitOfWork
	spots SpotRegistry
}

func NewSettlementCommitter(uow shared.UnitOfWork, spots SpotRegistry) *SettlementCommitter {
	return &SettlementCommitter{uow: uow, spots: spots}
}

// Commit is safe to call again for an attempt that already settled: it returns
// the existing record and changes nothing.
func (c *SettlementCommitter) Commit(ctx context.Context, p CommitParams) (*payment.SettlementRecord, error) {
	var (
		record   *payment.SettlementRecord
		spotID   *uuid.UUID
		released bool
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record, spotID, released = nil, nil, false

		sess, err := tx.Sessions().FindByID(ctx, p.SessionID)
		if err != nil {
			return err
		}
		attempt, err := tx.Attempts().LockByID(ctx, p.AttemptID)
		if err != nil {
			return err
		}
		if attempt.SessionID() != p.SessionID || !attempt.UsesMethod(p.Method) || attempt.Amount() != p.Amount {
			return ErrSettlementMismatch
		}

		if attempt.Status() == payment.StatusSettled {
			existing, err := tx.Settlements().Record(ctx, payment.NewSettlementRecord(p.SessionID, p.AttemptID, p.Amount, p.Method, p.At, p.OperatorID))
			if err != nil {
				return err
			}
			record = existing
			released = true
			return nil
		}
		if attempt.Status() != payment.StatusReadyToSettle {
			return errs.Mark(payment.ErrInvalidTransition, ErrInvalidTransition)
		}

		stored, err := tx.Settlements().Record(ctx, payment.NewSettlementRecord(p.SessionID, p.AttemptID, p.Amount, p.Method, p.At, p.OperatorID))
		if err != nil {
			return err
		}

		if err := tx.Sessions().Close(ctx, sess.ID(), p.At, &stored.ID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionClosed)
			}
			return err
		}

		if err := attempt.MarkSettled(stored.ID, p.At); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Attempts().Update(ctx, attempt, payment.StatusReadyToSettle); err != nil {
			return err
		}
		if err := enqueue(ctx, tx, TopicSettled, attemptEvent(attempt, p.At)); err != nil {
			return err
		}

		record = stored
		spotID = sess.SpotID()
		return nil
	})
	if err != nil {
		slog.Error("settlement commit failed",
			"session_id", p.SessionID,
			"attempt_id", p.AttemptID,
			"error", err.Error())
		return nil, errs.Mark(err, ErrSettlementFailed)
	}

	if !released {
		c.releaseSpot(ctx, p.SessionID, spotID)
	}
	return record, nil
}

// CloseExempt ends a session that owes nothing, without a settlement record.
// A live attempt, if any, is aborted in the same transaction and its external
// reference returned so the caller can cancel it with the provider.
func (c *SettlementCommitter) CloseExempt(ctx context.Context, sessionID uuid.UUID, at time.Time, basis tariff.Basis) (*payment.ExternalReference, error) {
	var (
		spotID  *uuid.UUID
		dropped *payment.ExternalReference
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		spotID, dropped = nil, nil

		sess, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			return err
		}

		live, err := tx.Attempts().LockLiveBySession(ctx, sessionID)
		switch {
		case err == nil:
			from := live.Status()
			if err := live.Abort(at); err != nil {
				return errs.Mark(err, ErrInvalidTransition)
			}
			if err := tx.Attempts().Update(ctx, live, from); err != nil {
				return err
			}
			dropped = live.External()
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if err := tx.Sessions().Close(ctx, sessionID, at, nil); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionClosed)
			}
			return err
		}

		spotID = sess.SpotID()
		return enqueue(ctx, tx, TopicClosedWithoutCharge, exitEvent{
			SessionID: sessionID,
			Basis:     string(basis),
			At:        at,
		})
	})
	if err != nil {
		return nil, err
	}

	c.releaseSpot(ctx, sessionID, spotID)
	return dropped, nil
}

// releaseSpot never fails the exit: an occupied-looking paid spot is reconciled out of band.
func (c *SettlementCommitter) releaseSpot(ctx context.Context, sessionID uuid.UUID, spotID *uuid.UUID) {
	if spotID == nil {
		return
	}
	if err := c.spots.SetSpotState(ctx, *spotID, spot.StateFree); err != nil {
		slog.Warn("failed to release spot after exit",
			"session_id", sessionID,
			"spot_id", *spotID,
			"error", err.Error())
	}
}
