package components

import (
	"parking-settlement/internal/infra/cache"
	"parking-settlement/internal/infra/readstore"
	"parking-settlement/internal/infra/repository"
	sqlc "parking-settlement/internal/infra/sqlc/generated"
	"parking-settlement/internal/infra/uow"
	"parking-settlement/internal/pkg/config"
	"parking-settlement/internal/usecase/commands"
	"parking-settlement/internal/usecase/queries"
	"parking-settlement/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Exit view
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExitViewQueries)),
		),
		fx.Annotate(
			readstore.NewExitReadStore,
			fx.As(new(queries.ExitReadStore)),
		),
		// Settlement audit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettlementListQueries)),
		),
		fx.Annotate(
			readstore.NewSettlementReadStore,
			fx.As(new(queries.SettlementReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(commands.ReservationStore)),
		),
		// Subscription
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubscriptionReadQueries)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(commands.SubscriptionStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Spot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SpotQueries)),
		),
		fx.Annotate(
			repository.NewSpotRepository,
			fx.As(new(commands.SpotRegistry)),
		),
		// Tariff catalog, read through Redis
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.TariffQueries)),
		),
		fx.Annotate(
			repository.NewTariffRepository,
			fx.As(new(cache.TariffLoader)),
		),
		fx.Annotate(
			NewTariffCatalog,
			fx.As(new(commands.TariffCatalog)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewTariffCatalog(client *redis.Client, loader cache.TariffLoader, cfg config.Config) *cache.TariffCache {
	return cache.NewTariffCache(client, loader, cfg.Cache.TariffTTL, cfg.Cache.KeyPrefix)
}
