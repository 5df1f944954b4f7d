package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-settlement/internal/domain/operator"
	"parking-settlement/internal/handler/api"
	"parking-settlement/internal/handler/middleware"
	"parking-settlement/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Exit       *api.ExitHandler
	Settlement *api.SettlementHandler
	Payment    *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		supervisor := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(operator.RoleSupervisor)}

		exits := apiGroup.Group("/exits")
		exits.Use(authMiddleware.RequireAuth())
		{
			addRoutes(exits, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Exit.Initiate},
				{Method: http.MethodGet, Path: "/:sessionId", Handler: h.Exit.Get},
				{Method: http.MethodDelete, Path: "/:sessionId", Handler: h.Exit.Cancel},
				{Method: http.MethodPost, Path: "/:sessionId/payment-method", Handler: h.Exit.SelectPaymentMethod},
				{Method: http.MethodPost, Path: "/:sessionId/transfer-confirmation", Handler: h.Exit.ConfirmTransfer},
				{Method: http.MethodPost, Path: "/:sessionId/refresh", Handler: h.Exit.Refresh},
				{Method: http.MethodPost, Path: "/:sessionId/settle", Handler: h.Exit.RetrySettlement},
				{Method: http.MethodPost, Path: "/:sessionId/mark-paid", Handler: h.Exit.MarkAsPaid, Mw: supervisor},
			})
		}

		settlements := apiGroup.Group("/settlements")
		settlements.Use(authMiddleware.RequireAuth())
		{
			addRoutes(settlements, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settlement.List, Mw: supervisor},
			})
		}

		// provider callbacks carry no operator token
		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/confirmations", Handler: h.Payment.ConfirmPayment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
