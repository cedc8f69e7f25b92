package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/domain/trade"
	"go.uber.org/zap"
)

// Repositories are the stores a Seeder writes to
type Repositories struct {
	Orders    trade.OrderRepository
	Invoices  trade.CustomerInvoiceRepository
	Returns   trade.SalesReturnRepository
	Vouchers  finance.VoucherRepository
	Payments  finance.PaymentRepository
	Inventory inventory.ItemRepository
}

// Seeder persists generated datasets
type Seeder struct {
	repos  Repositories
	logger *zap.Logger
}

// NewSeeder creates a seeder
func NewSeeder(repos Repositories, logger *zap.Logger) *Seeder {
	return &Seeder{repos: repos, logger: logger}
}

// HasData reports whether the tenant already has any orders
func (s *Seeder) HasData(ctx context.Context, tenantID uuid.UUID) (bool, error) {
	n, err := s.repos.Orders.CountForTenant(ctx, tenantID, shared.DefaultFilter())
	if err != nil {
		return false, fmt.Errorf("failed to count orders: %w", err)
	}
	return n > 0, nil
}

// Run generates and saves a dataset for tenantID
func (s *Seeder) Run(ctx context.Context, tenantID uuid.UUID, seed int64, counts Counts) (*Dataset, error) {
	start := time.Now()
	data, err := NewGenerator(seed, start).Generate(tenantID, counts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate demo data: %w", err)
	}

	if err := s.repos.Orders.SaveBatch(ctx, data.Orders); err != nil {
		return nil, fmt.Errorf("failed to save orders: %w", err)
	}
	if err := s.repos.Invoices.SaveBatch(ctx, data.Invoices); err != nil {
		return nil, fmt.Errorf("failed to save invoices: %w", err)
	}
	if err := s.repos.Returns.SaveBatch(ctx, data.Returns); err != nil {
		return nil, fmt.Errorf("failed to save returns: %w", err)
	}
	if err := s.repos.Vouchers.SaveBatch(ctx, data.Vouchers); err != nil {
		return nil, fmt.Errorf("failed to save vouchers: %w", err)
	}
	if err := s.repos.Payments.SaveBatch(ctx, data.Payments); err != nil {
		return nil, fmt.Errorf("failed to save payments: %w", err)
	}
	if err := s.repos.Inventory.SaveBatch(ctx, data.Inventory); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}

	s.logger.Info("Demo data seeded",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("records", data.Size()),
		zap.Duration("duration", time.Since(start)),
	)
	return data, nil
}
