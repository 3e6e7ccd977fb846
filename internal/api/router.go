package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/coffeeshop/ordering-api/internal/api/handler"
	"github.com/coffeeshop/ordering-api/internal/api/middleware"
	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
	"github.com/coffeeshop/ordering-api/internal/infrastructure/http/handlers"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Auth          ports.AuthService
	Users         ports.UserService
	Catalog       ports.CatalogService
	Orders        ports.OrderService
	Combos        ports.ComboService
	Notifications ports.NotificationService
}

type Options struct {
	CORSOrigins  []string
	BodyLimit    string
	JWTSecret    string
	AuthRequired bool

	Socket       handler.SocketServer
	HealthChecks []handlers.DependencyCheck

	// Registry receives the HTTP metrics. Nil means the default Prometheus registry.
	Registry *prometheus.Registry
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if opts.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(opts.BodyLimit))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "coffeeshop",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/socket"
		},
	}))

	// --- Guards ---
	// With AUTH_REQUIRED off every route stays open, as the mobile and
	// dashboard clients expect.
	var authed, admin echo.MiddlewareFunc = noop, noop
	if opts.AuthRequired {
		authed = middleware.Auth(opts.JWTSecret)
		admin = middleware.RBAC(domain.RoleAdmin)
	}

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewHealthDependenciesHandler(opts.HealthChecks...).Readiness)

	e.GET("/", handler.Hello)
	e.GET("/testconnection", handler.ConnectionCheck)
	if opts.Socket != nil {
		e.GET("/socket", handler.NewSocketHandler(opts.Socket).Connect)
	}

	// --- Auth ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Users ---
	userHandler := handler.NewUserHandler(svc.Users)
	users := e.Group("/users", authed, admin)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)

	// --- Menu ---
	itemHandler := handler.NewItemHandler(svc.Catalog)
	e.GET("/items", itemHandler.List)
	e.GET("/items/:id", itemHandler.Get)

	comboHandler := handler.NewComboHandler(svc.Combos)
	e.GET("/combos", comboHandler.List)
	e.GET("/combos/:id", comboHandler.Get)
	e.POST("/combos", comboHandler.Create, authed)
	e.PUT("/combos/:id", comboHandler.Update, authed)
	e.DELETE("/combos/:id", comboHandler.Delete, authed)

	// --- Orders ---
	orderHandler := handler.NewOrderHandler(svc.Orders)
	e.GET("/orders", orderHandler.List)
	e.GET("/orders/filter", orderHandler.Filter)
	e.GET("/orders/:id", orderHandler.Get)
	e.POST("/orders", orderHandler.Create, authed)
	e.PUT("/orders/:id", orderHandler.Update, authed)
	e.PATCH("/orders/:id/status", orderHandler.PatchStatus, authed)
	e.POST("/orders/:id/confirm", orderHandler.Confirm, authed)
	e.POST("/orders/:id/cancel", orderHandler.Cancel, authed)
	e.POST("/orders/:id", orderHandler.Confirm, authed)
	e.DELETE("/orders/:id", orderHandler.Cancel, authed)

	// --- Notifications ---
	notificationHandler := handler.NewNotificationHandler(svc.Notifications)
	e.POST("/notifications/sendAllClient", notificationHandler.SendAllClient, authed, admin)

	return e
}

func noop(next echo.HandlerFunc) echo.HandlerFunc { return next }

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Status >= 400:
				ev = log.Warn()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
