package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pos/backoffice/internal/application/dashboard"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/pos/backoffice/internal/infrastructure/logger"
	"github.com/pos/backoffice/internal/infrastructure/metrics"
	"github.com/pos/backoffice/internal/interfaces/http/handler"
	"github.com/pos/backoffice/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Version is reported by /api/v1/system/info
const Version = "1.0.0"

// Dependencies are the collaborators the HTTP layer serves
type Dependencies struct {
	Config       *config.Config
	Logger       *zap.Logger
	TableService *dashboard.TableService
	// Database backs /health; nil skips the database check
	Database handler.Pinger
	// Prometheus enables /metrics when http.metrics_enabled is set
	Prometheus *metrics.Registry
	// Meter records OpenTelemetry HTTP metrics; nil disables them
	Meter metric.Meter
	// TracerProvider overrides the global provider for server spans
	TracerProvider trace.TracerProvider
}

// NewEngine builds the gin engine with the middleware stack and every route.
// Middleware order: request ID, recovery, logging, security headers, CORS,
// body limit, metrics; the API group adds tracing and tenant resolution.
func NewEngine(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	prometheusEnabled := cfg.HTTP.MetricsEnabled && deps.Prometheus != nil
	if prometheusEnabled {
		engine.Use(deps.Prometheus.Middleware())
	}
	engine.Use(middleware.HTTPMetrics(deps.Meter))

	systemHandler := handler.NewSystemHandler(cfg.App.Name, Version, deps.Database)
	engine.GET("/health", systemHandler.Health)
	if prometheusEnabled {
		engine.GET("/metrics", deps.Prometheus.GinHandler())
	}

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Use(
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			Enabled:        cfg.Telemetry.Enabled || deps.TracerProvider != nil,
			TracerProvider: deps.TracerProvider,
		}),
		middleware.Tenant(),
		middleware.SpanEnricher(),
	)

	systemRoutes := NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	if deps.TableService != nil {
		tableHandler := handler.NewTableHandler(deps.TableService)
		tableRoutes := NewDomainGroup("tables", "/tables")
		tableRoutes.GET("", tableHandler.ListScreens)
		tableRoutes.GET("/:screen", tableHandler.Query)
		tableRoutes.POST("/:screen/views", tableHandler.CreateView)
		r.Register(tableRoutes)

		viewHandler := handler.NewViewHandler(deps.TableService)
		viewRoutes := NewDomainGroup("views", "/views")
		viewRoutes.GET("/:id", viewHandler.Get)
		viewRoutes.PUT("/:id/search", viewHandler.SetSearch)
		viewRoutes.PUT("/:id/page", viewHandler.ChangePage)
		viewRoutes.DELETE("/:id", viewHandler.Close)
		r.Register(viewRoutes)
	}

	r.Setup()
	return engine
}
