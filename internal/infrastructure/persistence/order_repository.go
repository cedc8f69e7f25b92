package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/pos/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveBatchSize bounds the rows of a single INSERT issued by SaveBatch
const saveBatchSize = 200

var orderListSpec = listSpec{
	searchColumns: []string{"order_number", "customer_name", "table_number", "seller_name", "courier_name"},
	sortFields:    OrderSortFields,
	defaultSort:   "placed_at",
	filterColumns: map[string]string{"status": "status", "channel": "channel"},
	dateColumn:    "placed_at",
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindAllForTenant finds all orders for a tenant with filtering
func (r *GormOrderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	var ms []models.OrderModel
	query := r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("tenant_id = ?", tenantID)
	if err := orderListSpec.applyFilter(query, filter).Find(&ms).Error; err != nil {
		return nil, err
	}
	orders := make([]trade.Order, len(ms))
	for i := range ms {
		orders[i] = *ms[i].ToDomain()
	}
	return orders, nil
}

// FindByNumber finds an order by its number within a tenant
func (r *GormOrderRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*trade.Order, error) {
	var m models.OrderModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND order_number = ?", tenantID, orderNumber).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Save(models.OrderModelFromDomain(order)).Error
}

// SaveBatch upserts orders in batches
func (r *GormOrderRepository) SaveBatch(ctx context.Context, orders []*trade.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ms := make([]*models.OrderModel, len(orders))
	for i, o := range orders {
		ms[i] = models.OrderModelFromDomain(o)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(ms, saveBatchSize).Error
}

// CountForTenant counts orders for a tenant with optional filters
func (r *GormOrderRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("tenant_id = ?", tenantID)
	if err := orderListSpec.applyFilterWithoutPagination(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
