package tariff

import (
	"errors"
	"strings"

	"parking-settlement/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrRuleNotFound       = errors.New("tariff rule not found")
	ErrInvalidBillingUnit = errors.New("invalid billing unit")
	ErrUnitNotBillable    = errors.New("billing unit is not priced by the fee calculator")
	ErrEmptyCategory      = errors.New("vehicle category cannot be empty")
)

// Rule is one price point for a (template or category, billing unit) pair.
// A nil TemplateID marks the generic category fallback.
type Rule struct {
	ID               uuid.UUID
	TemplateID       *uuid.UUID
	Category         string
	Unit             BillingUnit
	BasePrice        money.Money
	IncrementalPrice money.Money
}

func NewRule(id uuid.UUID, templateID *uuid.UUID, category string, unit BillingUnit, basePrice, incrementalPrice money.Money) (Rule, error) {
	category = NormalizeCategory(category)
	if category == "" {
		return Rule{}, ErrEmptyCategory
	}
	if _, ok := unit.Length(); !ok {
		return Rule{}, ErrInvalidBillingUnit
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Rule{
		ID:               id,
		TemplateID:       templateID,
		Category:         category,
		Unit:             unit,
		BasePrice:        basePrice,
		IncrementalPrice: incrementalPrice,
	}, nil
}

// HourlyRule builds an hourly rule billing the same rate for every hour.
func HourlyRule(category string, rate money.Money) Rule {
	return Rule{
		Category:         NormalizeCategory(category),
		Unit:             UnitHourly,
		BasePrice:        rate,
		IncrementalPrice: rate,
	}
}

func (r Rule) IsGeneric() bool {
	return r.TemplateID == nil
}

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
