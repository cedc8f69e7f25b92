package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/application/dashboard"
	"github.com/pos/backoffice/internal/infrastructure/cache"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/pos/backoffice/internal/infrastructure/i18n"
	"github.com/pos/backoffice/internal/infrastructure/logger"
	"github.com/pos/backoffice/internal/infrastructure/metrics"
	"github.com/pos/backoffice/internal/infrastructure/persistence"
	"github.com/pos/backoffice/internal/infrastructure/seed"
	"github.com/pos/backoffice/internal/infrastructure/telemetry"
	"github.com/pos/backoffice/internal/interfaces/http/router"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting back-office API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	meter := mp.Meter(cfg.Telemetry.ServiceName)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithFullSQL(cfg.Telemetry.DBLogFullSQL),
	)
	var plugins []gorm.Plugin
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbSystem := "postgresql"
		if cfg.Database.Driver == persistence.DriverSQLite {
			dbSystem = "sqlite"
		}
		plugins = append(plugins, telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
			DBSystem:        dbSystem,
		}, log))
	}

	db, err := persistence.NewDatabase(&cfg.Database,
		persistence.WithLogger(gormLog),
		persistence.WithPlugins(plugins...),
	)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// PostgreSQL schemas are owned by cmd/migrate
	if db.Driver == persistence.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}

	orders := persistence.NewGormOrderRepository(db.DB)
	invoices := persistence.NewGormCustomerInvoiceRepository(db.DB)
	returns := persistence.NewGormSalesReturnRepository(db.DB)
	vouchers := persistence.NewGormVoucherRepository(db.DB)
	payments := persistence.NewGormPaymentRepository(db.DB)
	items := persistence.NewGormInventoryItemRepository(db.DB)

	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(seed.Repositories{
			Orders:    orders,
			Invoices:  invoices,
			Returns:   returns,
			Vouchers:  vouchers,
			Payments:  payments,
			Inventory: items,
		}, log)
		if err := seedIfEmpty(ctx, seeder, cfg.Seed, log); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	store, err := cache.NewViewStateStoreFactory(cfg.Redis, cache.WithLogger(log)).CreateStore(cfg.Table.SessionStore)
	if err != nil {
		log.Fatal("Failed to create view state store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing view state store", zap.Error(err))
		}
	}()

	translator, err := i18n.NewTranslator(cfg.Table.DefaultLanguage)
	if err != nil {
		log.Fatal("Failed to load translations", zap.Error(err))
	}

	prom := metrics.NewRegistry(metrics.Config{IncludeRuntime: true})
	tableMetrics, err := telemetry.NewTableMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create table metrics", zap.Error(err))
	}

	tableService := dashboard.NewTableService(dashboard.NewScreens(dashboard.Repositories{
		Orders:    orders,
		Invoices:  invoices,
		Returns:   returns,
		Vouchers:  vouchers,
		Payments:  payments,
		Inventory: items,
	}), store, translator, cfg.Table, log)
	tableService.SetTableMetrics(tableMetrics)
	tableService.SetPrometheus(prom)

	engine := router.NewEngine(router.Dependencies{
		Config:       cfg,
		Logger:       log,
		TableService: tableService,
		Database:     db,
		Prometheus:   prom,
		Meter:        meter,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := mp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited")
}

// seedIfEmpty fills the configured tenant with demo data unless it already has orders
func seedIfEmpty(ctx context.Context, seeder *seed.Seeder, cfg config.SeedConfig, log *zap.Logger) error {
	tenantID, err := uuid.Parse(cfg.TenantID)
	if err != nil {
		return err
	}
	hasData, err := seeder.HasData(ctx, tenantID)
	if err != nil {
		return err
	}
	if hasData {
		log.Info("Demo data already present, skipping seed", zap.String("tenant_id", tenantID.String()))
		return nil
	}
	_, err = seeder.Run(ctx, tenantID, cfg.RandomSeed, seed.Counts{
		Orders:    cfg.Orders,
		Invoices:  cfg.Invoices,
		Returns:   cfg.Returns,
		Vouchers:  cfg.Vouchers,
		Payments:  cfg.Payments,
		Inventory: cfg.Inventory,
	})
	return err
}
