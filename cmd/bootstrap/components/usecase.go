package components

import (
	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/pkg/clock"
	"parking-settlement/internal/pkg/config"
	"parking-settlement/internal/usecase"
	"parking-settlement/internal/usecase/commands"
	"parking-settlement/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.ExitConfig {
		return commands.ExitConfig{
			ConfirmationTimeout: cfg.Payment.ConfirmationTimeout,
			CreateRetry: commands.RetryPolicy{
				Retries: cfg.Payment.CreateRetries,
				Backoff: cfg.Payment.RetryBackoff,
			},
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			spots commands.SpotRegistry,
			reservations commands.ReservationStore,
			subscriptions commands.SubscriptionStore,
			catalog commands.TariffCatalog,
			cfg config.Config,
		) *commands.FeeComputer {
			return commands.NewFeeComputer(spots, reservations, subscriptions, catalog,
				money.FromCents(cfg.Billing.FallbackHourlyRateCents))
		},
		commands.NewSettlementCommitter,
		commands.NewExitCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewExitQueries,
		queries.NewSettlementQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
