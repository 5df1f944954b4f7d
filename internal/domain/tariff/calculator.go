package tariff

import (
	"time"

	"parking-settlement/internal/domain/money"
)

// Quote is the outcome of pricing one elapsed interval.
type Quote struct {
	Units    int64
	Computed money.Money
	Amount   money.Money
	// Degraded marks a zero amount with no agreed price behind it. Callers
	// proceed with the exit but flag it for review.
	Degraded bool
}

type Calculator struct{}

func NewCalculator() Calculator {
	return Calculator{}
}

// Compute bills at least one unit for any elapsed duration and never returns
// less than the agreed price.
func (Calculator) Compute(rule Rule, elapsed time.Duration, agreed money.Money) (Quote, error) {
	unitLength, ok := rule.Unit.Length()
	if !ok {
		if rule.Unit.IsValid() {
			return Quote{}, ErrUnitNotBillable
		}
		return Quote{}, ErrInvalidBillingUnit
	}

	units := UnitsFor(elapsed, unitLength)

	var computed money.Money
	if rule.Unit == UnitHourly {
		computed = rule.BasePrice
		if units > 1 {
			computed = computed.Add(rule.IncrementalPrice.Mul(units - 1))
		}
	} else {
		computed = rule.BasePrice.Mul(units)
	}

	amount := money.Max(computed, agreed)
	return Quote{
		Units:    units,
		Computed: computed,
		Amount:   amount,
		Degraded: amount.IsZero() && agreed.IsZero(),
	}, nil
}

// UnitsFor returns ceil(elapsed / unitLength) with a minimum of one unit.
func UnitsFor(elapsed, unitLength time.Duration) int64 {
	if elapsed <= 0 || unitLength <= 0 {
		return 1
	}
	units := int64(elapsed / unitLength)
	if elapsed%unitLength != 0 {
		units++
	}
	if units < 1 {
		units = 1
	}
	return units
}
