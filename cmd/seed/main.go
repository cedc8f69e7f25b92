package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/pos/backoffice/internal/infrastructure/logger"
	"github.com/pos/backoffice/internal/infrastructure/persistence"
	"github.com/pos/backoffice/internal/infrastructure/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var (
		tenant = flag.String("tenant", cfg.Seed.TenantID, "Tenant to seed")
		random = flag.Int64("seed", cfg.Seed.RandomSeed, "Random seed; 0 picks one")
		force  = flag.Bool("force", false, "Seed even when the tenant already has orders")
		counts seed.Counts
	)
	flag.IntVar(&counts.Orders, "orders", cfg.Seed.Orders, "Orders to generate")
	flag.IntVar(&counts.Invoices, "invoices", cfg.Seed.Invoices, "Customer invoices to generate")
	flag.IntVar(&counts.Returns, "returns", cfg.Seed.Returns, "Sales returns to generate")
	flag.IntVar(&counts.Vouchers, "vouchers", cfg.Seed.Vouchers, "Vouchers to generate")
	flag.IntVar(&counts.Payments, "payments", cfg.Seed.Payments, "Payments to generate")
	flag.IntVar(&counts.Inventory, "inventory", cfg.Seed.Inventory, "Inventory items to generate")
	flag.Parse()

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	tenantID, err := uuid.Parse(*tenant)
	if err != nil {
		log.Fatal("Invalid tenant ID", zap.String("tenant", *tenant), zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database,
		persistence.WithLogger(logger.NewGormLogger(log, logger.MapGormLogLevel("warn"))),
	)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if db.Driver == persistence.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}

	seeder := seed.NewSeeder(seed.Repositories{
		Orders:    persistence.NewGormOrderRepository(db.DB),
		Invoices:  persistence.NewGormCustomerInvoiceRepository(db.DB),
		Returns:   persistence.NewGormSalesReturnRepository(db.DB),
		Vouchers:  persistence.NewGormVoucherRepository(db.DB),
		Payments:  persistence.NewGormPaymentRepository(db.DB),
		Inventory: persistence.NewGormInventoryItemRepository(db.DB),
	}, log)

	ctx := context.Background()
	if !*force {
		hasData, err := seeder.HasData(ctx, tenantID)
		if err != nil {
			log.Fatal("Failed to inspect tenant", zap.Error(err))
		}
		if hasData {
			log.Info("Tenant already has orders; use -force to add more", zap.String("tenant_id", tenantID.String()))
			return
		}
	}

	if _, err := seeder.Run(ctx, tenantID, *random, counts); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}
