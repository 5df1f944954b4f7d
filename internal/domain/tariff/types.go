package tariff

import "time"

type BillingUnit string

const (
	UnitHourly       BillingUnit = "hourly"
	UnitDaily        BillingUnit = "daily"
	UnitWeekly       BillingUnit = "weekly"
	UnitMonthly      BillingUnit = "monthly"
	UnitSubscription BillingUnit = "subscription"
	UnitReservation  BillingUnit = "reservation"
)

const (
	hourLength  = time.Hour
	dayLength   = 24 * time.Hour
	weekLength  = 7 * dayLength
	monthLength = 30 * dayLength // fixed 30-day unit, not a calendar month
)

func (u BillingUnit) String() string {
	return string(u)
}

func (u BillingUnit) IsValid() bool {
	switch u {
	case UnitHourly, UnitDaily, UnitWeekly, UnitMonthly, UnitSubscription, UnitReservation:
		return true
	default:
		return false
	}
}

// Length reports the duration of one billable unit. Reservation and
// subscription sessions are not priced per unit.
func (u BillingUnit) Length() (time.Duration, bool) {
	switch u {
	case UnitHourly:
		return hourLength, true
	case UnitDaily:
		return dayLength, true
	case UnitWeekly:
		return weekLength, true
	case UnitMonthly:
		return monthLength, true
	default:
		return 0, false
	}
}

// Basis tells the operator where an exit amount came from.
type Basis string

const (
	BasisHourly                  Basis = "hourly"
	BasisDaily                   Basis = "daily"
	BasisWeekly                  Basis = "weekly"
	BasisMonthly                 Basis = "monthly"
	BasisReservationWithinWindow Basis = "reservation_within_window"
	BasisReservationOverstay     Basis = "reservation_overstay"
	BasisSubscriptionExempt      Basis = "subscription_exempt"
)

func (b Basis) String() string {
	return string(b)
}

func BasisForUnit(u BillingUnit) Basis {
	switch u {
	case UnitDaily:
		return BasisDaily
	case UnitWeekly:
		return BasisWeekly
	case UnitMonthly:
		return BasisMonthly
	default:
		return BasisHourly
	}
}
