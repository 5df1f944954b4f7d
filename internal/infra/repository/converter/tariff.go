package converter

import (
	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/tariff"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/pkg/pgconv"
)

func TariffRuleToDomain(row sqlc.TariffRules) (tariff.Rule, error) {
	return tariff.NewRule(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.TemplateID),
		row.VehicleCategory,
		tariff.BillingUnit(row.BillingUnit),
		money.FromCents(row.BasePriceCents),
		money.FromCents(row.IncrementalPriceCents),
	)
}
