package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindAllForTenant returns the tenant's orders, newest first, within filter's page
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Order, error)
	// FindByNumber returns the order with the given number
	FindByNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*Order, error)
	Save(ctx context.Context, order *Order) error
	SaveBatch(ctx context.Context, orders []*Order) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// CustomerInvoiceRepository defines the interface for invoice persistence
type CustomerInvoiceRepository interface {
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]CustomerInvoice, error)
	Save(ctx context.Context, invoice *CustomerInvoice) error
	SaveBatch(ctx context.Context, invoices []*CustomerInvoice) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// SalesReturnRepository defines the interface for sales return persistence
type SalesReturnRepository interface {
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]SalesReturn, error)
	Save(ctx context.Context, sr *SalesReturn) error
	SaveBatch(ctx context.Context, returns []*SalesReturn) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
