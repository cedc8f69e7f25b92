package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
)

// VoucherRepository defines the interface for voucher persistence
type VoucherRepository interface {
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Voucher, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Voucher, error)
	Save(ctx context.Context, voucher *Voucher) error
	SaveBatch(ctx context.Context, vouchers []*Voucher) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
	SaveBatch(ctx context.Context, payments []*Payment) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
