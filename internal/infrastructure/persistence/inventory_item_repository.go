package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var inventoryItemListSpec = listSpec{
	searchColumns: []string{"sku", "name", "category"},
	sortFields:    InventoryItemSortFields,
	defaultSort:   "updated_at",
	filterColumns: map[string]string{"category": "category", "unit": "unit"},
	dateColumn:    "updated_at",
}

// GormInventoryItemRepository implements inventory.ItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// FindAllForTenant finds all inventory items for a tenant with filtering
func (r *GormInventoryItemRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.Item, error) {
	var ms []models.InventoryItemModel
	query := r.db.WithContext(ctx).Model(&models.InventoryItemModel{}).Where("tenant_id = ?", tenantID)
	if err := inventoryItemListSpec.applyFilter(query, filter).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]inventory.Item, len(ms))
	for i := range ms {
		items[i] = *ms[i].ToDomain()
	}
	return items, nil
}

// FindBySKU finds an inventory item by SKU within a tenant
func (r *GormInventoryItemRepository) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*inventory.Item, error) {
	var m models.InventoryItemModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND sku = ?", tenantID, sku).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// Save creates or updates an inventory item
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Save(models.InventoryItemModelFromDomain(item)).Error
}

// SaveBatch upserts inventory items in batches
func (r *GormInventoryItemRepository) SaveBatch(ctx context.Context, items []*inventory.Item) error {
	if len(items) == 0 {
		return nil
	}
	ms := make([]*models.InventoryItemModel, len(items))
	for i, it := range items {
		ms[i] = models.InventoryItemModelFromDomain(it)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(ms, saveBatchSize).Error
}

// CountForTenant counts inventory items for a tenant with optional filters
func (r *GormInventoryItemRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.InventoryItemModel{}).Where("tenant_id = ?", tenantID)
	if err := inventoryItemListSpec.applyFilterWithoutPagination(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ inventory.ItemRepository = (*GormInventoryItemRepository)(nil)
