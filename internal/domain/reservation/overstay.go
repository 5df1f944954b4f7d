package reservation

import (
	"errors"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/tariff"

	"github.com/google/uuid"
)

type RuleResolver interface {
	Resolve(category string, unit tariff.BillingUnit, templateID *uuid.UUID) (tariff.Rule, error)
}

type OverstayInput struct {
	Reservation *Reservation
	Category    string
	TemplateID  *uuid.UUID
	Now         time.Time
}

type ExitAmount struct {
	Amount       money.Money
	Basis        tariff.Basis
	Excess       time.Duration
	Units        int64
	UsedFallback bool
}

// OverstayAdjuster prices exits of reservation-backed sessions. Only the time
// after the window end is billed, as a fresh hourly session.
type OverstayAdjuster struct {
	calculator     tariff.Calculator
	fallbackHourly money.Money
}

func NewOverstayAdjuster(fallbackHourly money.Money) *OverstayAdjuster {
	return &OverstayAdjuster{
		calculator:     tariff.NewCalculator(),
		fallbackHourly: fallbackHourly,
	}
}

func (a *OverstayAdjuster) Compute(resolver RuleResolver, in OverstayInput) (ExitAmount, error) {
	excess := in.Reservation.Window().Overstay(in.Now)
	if excess == 0 {
		return ExitAmount{Amount: money.Zero(), Basis: tariff.BasisReservationWithinWindow}, nil
	}

	usedFallback := false
	rule, err := resolver.Resolve(in.Category, tariff.UnitHourly, in.TemplateID)
	if err != nil {
		if !errors.Is(err, tariff.ErrRuleNotFound) {
			return ExitAmount{}, err
		}
		rule = tariff.HourlyRule(in.Category, a.fallbackHourly)
		usedFallback = true
	}

	// prepaid amount covers the window only, so it is not a floor here
	quote, err := a.calculator.Compute(rule, excess, money.Zero())
	if err != nil {
		return ExitAmount{}, err
	}

	return ExitAmount{
		Amount:       quote.Amount,
		Basis:        tariff.BasisReservationOverstay,
		Excess:       excess,
		Units:        quote.Units,
		UsedFallback: usedFallback,
	}, nil
}
