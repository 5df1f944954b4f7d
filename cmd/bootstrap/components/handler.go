package components

import (
	"parking-settlement/internal/handler"
	"parking-settlement/internal/handler/api"
	"parking-settlement/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewExitHandler,
		api.NewSettlementHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		func(exit *api.ExitHandler, settlement *api.SettlementHandler, pay *api.PaymentHandler) handler.Handlers {
			return handler.Handlers{Exit: exit, Settlement: settlement, Payment: pay}
		},
	),
	fx.Invoke(handler.NewRouter),
)
