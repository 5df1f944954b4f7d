//go:build unit

package tariff_test

import (
	"testing"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/tariff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newID() uuid.UUID { return uuid.New() }

func mustRule(t *testing.T, id string, templateID *uuid.UUID, category string, unit tariff.BillingUnit, base int64) tariff.Rule {
	t.Helper()
	r, err := tariff.NewRule(uuid.MustParse(id), templateID, category, unit, money.FromCents(base), money.FromCents(base))
	require.NoError(t, err)
	return r
}

func TestResolver_Resolve(t *testing.T) {
	template := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	otherTemplate := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")

	genericCarHourly := mustRule(t, "00000000-0000-0000-0000-000000000010", nil, "car", tariff.UnitHourly, 20000)
	templateCarHourly := mustRule(t, "00000000-0000-0000-0000-000000000020", &template, "car", tariff.UnitHourly, 30000)
	templateCarDaily := mustRule(t, "00000000-0000-0000-0000-000000000030", &template, "car", tariff.UnitDaily, 150000)
	otherTemplateCarWeekly := mustRule(t, "00000000-0000-0000-0000-000000000040", &otherTemplate, "car", tariff.UnitWeekly, 700000)
	genericMotoHourly := mustRule(t, "00000000-0000-0000-0000-000000000050", nil, "motorcycle", tariff.UnitHourly, 10000)

	resolver := tariff.NewResolver([]tariff.Rule{
		genericCarHourly, templateCarHourly, templateCarDaily, otherTemplateCarWeekly, genericMotoHourly,
	})

	testCases := []struct {
		name       string
		category   string
		unit       tariff.BillingUnit
		templateID *uuid.UUID
		want       *tariff.Rule
	}{
		{name: "template match wins over category", category: "car", unit: tariff.UnitHourly, templateID: &template, want: &templateCarHourly},
		{name: "no template falls back to category", category: "car", unit: tariff.UnitHourly, want: &genericCarHourly},
		{name: "template without the unit falls back to category", category: "motorcycle", unit: tariff.UnitHourly, templateID: &template, want: &genericMotoHourly},
		{name: "category fallback may use another template's rule", category: "car", unit: tariff.UnitWeekly, templateID: &template, want: &otherTemplateCarWeekly},
		{name: "category is normalized", category: "  CAR ", unit: tariff.UnitDaily, want: &templateCarDaily},
		{name: "nothing matches", category: "truck", unit: tariff.UnitHourly, templateID: &template},
		{name: "unit without any rule", category: "car", unit: tariff.UnitMonthly},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Resolve(tc.category, tc.unit, tc.templateID)
			if tc.want == nil {
				require.ErrorIs(t, err, tariff.ErrRuleNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.ID, got.ID)
		})
	}
}

func TestResolver_TieBreak(t *testing.T) {
	template := uuid.New()

	t.Run("category step prefers the generic rule", func(t *testing.T) {
		specific := mustRule(t, "00000000-0000-0000-0000-000000000001", &template, "car", tariff.UnitHourly, 1)
		generic := mustRule(t, "00000000-0000-0000-0000-000000000009", nil, "car", tariff.UnitHourly, 2)

		for _, order := range [][]tariff.Rule{{specific, generic}, {generic, specific}} {
			got, err := tariff.NewResolver(order).Resolve("car", tariff.UnitHourly, nil)
			require.NoError(t, err)
			assert.Equal(t, generic.ID, got.ID)
		}
	})

	t.Run("template step only considers the requested category then the lowest id", func(t *testing.T) {
		moto := mustRule(t, "00000000-0000-0000-0000-000000000001", &template, "motorcycle", tariff.UnitHourly, 1)
		carHigh := mustRule(t, "00000000-0000-0000-0000-000000000008", &template, "car", tariff.UnitHourly, 2)
		carLow := mustRule(t, "00000000-0000-0000-0000-000000000007", &template, "car", tariff.UnitHourly, 3)

		for _, order := range [][]tariff.Rule{{moto, carHigh, carLow}, {carLow, carHigh, moto}, {carHigh, moto, carLow}} {
			got, err := tariff.NewResolver(order).Resolve("car", tariff.UnitHourly, &template)
			require.NoError(t, err)
			assert.Equal(t, carLow.ID, got.ID)
		}
	})

	t.Run("another category's template rule is never charged", func(t *testing.T) {
		carTemplate := mustRule(t, "00000000-0000-0000-0000-000000000001", &template, "car", tariff.UnitHourly, 30000)
		truckGeneric := mustRule(t, "00000000-0000-0000-0000-000000000002", nil, "truck", tariff.UnitHourly, 45000)
		resolver := tariff.NewResolver([]tariff.Rule{carTemplate, truckGeneric})

		got, err := resolver.Resolve("truck", tariff.UnitHourly, &template)
		require.NoError(t, err)
		assert.Equal(t, truckGeneric.ID, got.ID)

		_, err = resolver.Resolve("motorcycle", tariff.UnitHourly, &template)
		assert.ErrorIs(t, err, tariff.ErrRuleNotFound)
	})
}

func TestNewRule(t *testing.T) {
	_, err := tariff.NewRule(uuid.Nil, nil, " ", tariff.UnitHourly, money.Zero(), money.Zero())
	assert.ErrorIs(t, err, tariff.ErrEmptyCategory)

	_, err = tariff.NewRule(uuid.Nil, nil, "car", tariff.UnitReservation, money.Zero(), money.Zero())
	assert.ErrorIs(t, err, tariff.ErrInvalidBillingUnit)

	r, err := tariff.NewRule(uuid.Nil, nil, "Car", tariff.UnitDaily, money.FromCents(1), money.Zero())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, "car", r.Category)
	assert.True(t, r.IsGeneric())
}
