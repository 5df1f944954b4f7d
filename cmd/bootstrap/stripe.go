package bootstrap

import (
	"parking-settlement/internal/infra/gateway"
	"parking-settlement/internal/pkg/config"
	"parking-settlement/internal/usecase/commands"

	"github.com/stripe/stripe-go/v72/client"
	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		NewStripeAPI,
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewStripeAPI(cfg config.Config) *client.API {
	return gateway.NewStripeClient(cfg.Payment)
}

func NewPaymentGateway(api *client.API, cfg config.Config) *gateway.StripeGateway {
	return gateway.NewStripeGateway(api, cfg.Payment, cfg.Billing)
}
