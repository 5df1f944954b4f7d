package repository

import (
	"context"
	"log/slog"

	"parking-settlement/internal/domain/tariff"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/infra/repository/converter"
	sqlc "parking-settlement/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type TariffQueries interface {
	ListTariffRulesByEstablishment(ctx context.Context, db sqlc.DBTX, establishmentID uuid.UUID) ([]sqlc.TariffRules, error)
}

type TariffRepository struct {
	queries TariffQueries
	db      sqlc.DBTX
}

func NewTariffRepository(queries TariffQueries, db sqlc.DBTX) *TariffRepository {
	return &TariffRepository{
		queries: queries,
		db:      db,
	}
}

// Rules loads the establishment's catalog. Rows the domain rejects are skipped
// and logged rather than failing the whole catalog.
func (r *TariffRepository) Rules(ctx context.Context, establishmentID uuid.UUID) ([]tariff.Rule, error) {
	rows, err := r.queries.ListTariffRulesByEstablishment(ctx, r.db, establishmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tariff rules", err)
	}

	rules := make([]tariff.Rule, 0, len(rows))
	for _, row := range rows {
		rule, err := converter.TariffRuleToDomain(row)
		if err != nil {
			slog.Warn("skipping invalid tariff rule", "rule_id", row.ID, "error", err.Error())
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
