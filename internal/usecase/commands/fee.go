package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/reservation"
	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/domain/tariff"
	"parking-settlement/internal/infra"

	"github.com/google/uuid"
)

// feeDecision is the outcome of pricing one exit.
type feeDecision struct {
	Amount         money.Money
	Basis          tariff.Basis
	Units          int64
	Warnings       []string
	RequiresReview bool
	// CloseDirectly marks exits that end without a payment attempt:
	// subscription exemptions and reservations left within their window.
	CloseDirectly bool
}

func (d *feeDecision) warn(w string) {
	d.Warnings = append(d.Warnings, w)
}

type FeeComputer struct {
	spots          SpotRegistry
	reservations   ReservationStore
	subscriptions  SubscriptionStore
	catalog        TariffCatalog
	calculator     tariff.Calculator
	adjuster       *reservation.OverstayAdjuster
	fallbackHourly money.Money
}

func NewFeeComputer(
	spots SpotRegistry,
	reservations ReservationStore,
	subscriptions SubscriptionStore,
	catalog TariffCatalog,
	fallbackHourly money.Money,
) *FeeComputer {
	return &FeeComputer{
		spots:          spots,
		reservations:   reservations,
		subscriptions:  subscriptions,
		catalog:        catalog,
		calculator:     tariff.NewCalculator(),
		adjuster:       reservation.NewOverstayAdjuster(fallbackHourly),
		fallbackHourly: fallbackHourly,
	}
}

// Compute prices the session as of now. Subscription exemption is checked
// before the reservation path; the two are treated as mutually exclusive.
func (f *FeeComputer) Compute(ctx context.Context, sess *session.ParkingSession, now time.Time) (feeDecision, error) {
	templateID, err := f.templateFor(ctx, sess)
	if err != nil {
		return feeDecision{}, err
	}

	if sess.SpotID() != nil {
		sub, err := f.subscriptions.FindActiveSubscription(ctx, sess.Plate(), *sess.SpotID(), now)
		if err != nil {
			return feeDecision{}, err
		}
		if sub.Covers(sess.Plate(), *sess.SpotID(), now) {
			return feeDecision{Amount: money.Zero(), Basis: tariff.BasisSubscriptionExempt, CloseDirectly: true}, nil
		}
	}

	switch sess.Unit() {
	case tariff.UnitSubscription:
		f.logIntegrity(sess, WarningSubscriptionMissing)
		return f.integrityFallback(ctx, sess, templateID, now, WarningSubscriptionMissing), nil
	case tariff.UnitReservation:
		return f.computeReservation(ctx, sess, templateID, now)
	default:
		return f.computeTimed(ctx, sess, templateID, now), nil
	}
}

func (f *FeeComputer) templateFor(ctx context.Context, sess *session.ParkingSession) (*uuid.UUID, error) {
	if sess.SpotID() == nil {
		return nil, nil
	}
	templateID, err := f.spots.TemplateForSpot(ctx, *sess.SpotID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("session spot is not registered", "session_id", sess.ID(), "spot_id", *sess.SpotID())
			return nil, nil
		}
		return nil, err
	}
	return templateID, nil
}

func (f *FeeComputer) computeReservation(ctx context.Context, sess *session.ParkingSession, templateID *uuid.UUID, now time.Time) (feeDecision, error) {
	res, err := f.reservations.FindActiveReservation(ctx, sess.Plate(), sess.EstablishmentID(), sess.EntryAt())
	if err != nil {
		return feeDecision{}, err
	}
	if res == nil {
		f.logIntegrity(sess, WarningReservationMissing)
		return f.integrityFallback(ctx, sess, templateID, now, WarningReservationMissing), nil
	}

	resolver, catalogOK := f.resolver(ctx, sess)
	out, err := f.adjuster.Compute(resolver, reservation.OverstayInput{
		Reservation: res,
		Category:    sess.Category(),
		TemplateID:  templateID,
		Now:         now,
	})
	if err != nil {
		return feeDecision{}, err
	}

	d := feeDecision{Amount: out.Amount, Basis: out.Basis, Units: out.Units}
	if out.Basis == tariff.BasisReservationWithinWindow {
		d.CloseDirectly = true
		return d, nil
	}
	if !catalogOK {
		d.warn(WarningTariffUnavailable)
	} else if out.UsedFallback {
		d.warn(WarningTariffNotFound)
	}
	return d, nil
}

// integrityFallback bills hourly from entry when the record that should govern
// the session is gone, and flags the attempt for manual review.
func (f *FeeComputer) integrityFallback(ctx context.Context, sess *session.ParkingSession, templateID *uuid.UUID, now time.Time, warning string) feeDecision {
	d := f.price(ctx, sess, tariff.UnitHourly, templateID, now)
	d.warn(warning)
	d.RequiresReview = true
	return d
}

func (f *FeeComputer) computeTimed(ctx context.Context, sess *session.ParkingSession, templateID *uuid.UUID, now time.Time) feeDecision {
	return f.price(ctx, sess, sess.Unit(), templateID, now)
}

// price resolves a rule for unit, retrying hourly and then the configured
// fallback rate, so a missing tariff never blocks an exit.
func (f *FeeComputer) price(ctx context.Context, sess *session.ParkingSession, unit tariff.BillingUnit, templateID *uuid.UUID, now time.Time) feeDecision {
	var d feeDecision

	resolver, catalogOK := f.resolver(ctx, sess)
	if !catalogOK {
		d.warn(WarningTariffUnavailable)
	}

	rule, err := resolver.Resolve(sess.Category(), unit, templateID)
	if errors.Is(err, tariff.ErrRuleNotFound) && unit != tariff.UnitHourly {
		rule, err = resolver.Resolve(sess.Category(), tariff.UnitHourly, templateID)
	}
	if err != nil {
		rule = tariff.HourlyRule(sess.Category(), f.fallbackHourly)
	}
	if catalogOK && (err != nil || rule.Unit != unit) {
		// any rule other than the one the session agreed to is a configuration gap
		d.warn(WarningTariffNotFound)
		d.RequiresReview = true
		slog.Warn("no tariff rule for session unit; billing hourly",
			"session_id", sess.ID(),
			"category", sess.Category(),
			"unit", string(unit),
			"fallback_rate", err != nil)
	}

	quote, err := f.calculator.Compute(rule, sess.Elapsed(now), sess.AgreedPrice())
	if err != nil {
		// rules reaching here are always timed units
		quote, _ = f.calculator.Compute(tariff.HourlyRule(sess.Category(), f.fallbackHourly), sess.Elapsed(now), sess.AgreedPrice())
	}

	d.Amount = quote.Amount
	d.Units = quote.Units
	d.Basis = tariff.BasisForUnit(rule.Unit)
	if quote.Degraded {
		d.warn(WarningZeroFee)
		d.RequiresReview = true
	}
	return d
}

// resolver builds a resolver over the establishment catalog. A catalog that
// cannot be loaded yields an empty resolver; the second result reports that.
func (f *FeeComputer) resolver(ctx context.Context, sess *session.ParkingSession) (*tariff.Resolver, bool) {
	rules, err := f.catalog.Rules(ctx, sess.EstablishmentID())
	if err != nil {
		slog.Error("tariff catalog unavailable; using fallback hourly rate",
			"establishment_id", sess.EstablishmentID(),
			"error", err.Error())
		return tariff.NewResolver(nil), false
	}
	return tariff.NewResolver(rules), true
}

func (f *FeeComputer) logIntegrity(sess *session.ParkingSession, warning string) {
	slog.Warn("session billing record missing; billing hourly from entry",
		"integrity", true,
		"warning", warning,
		"session_id", sess.ID(),
		"plate", sess.Plate(),
		"unit", string(sess.Unit()))
}
