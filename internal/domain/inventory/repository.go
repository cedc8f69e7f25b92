package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
)

// ItemRepository defines the interface for inventory item persistence
type ItemRepository interface {
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Item, error)
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Item, error)
	Save(ctx context.Context, item *Item) error
	SaveBatch(ctx context.Context, items []*Item) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
