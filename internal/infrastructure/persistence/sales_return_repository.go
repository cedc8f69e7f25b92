package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/pos/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var salesReturnListSpec = listSpec{
	searchColumns: []string{"return_number", "order_number", "customer_name", "reason"},
	sortFields:    SalesReturnSortFields,
	defaultSort:   "requested_at",
	filterColumns: map[string]string{"status": "status", "order_number": "order_number"},
	dateColumn:    "requested_at",
}

// GormSalesReturnRepository implements SalesReturnRepository using GORM
type GormSalesReturnRepository struct {
	db *gorm.DB
}

// NewGormSalesReturnRepository creates a new GormSalesReturnRepository
func NewGormSalesReturnRepository(db *gorm.DB) *GormSalesReturnRepository {
	return &GormSalesReturnRepository{db: db}
}

// FindAllForTenant finds all sales returns for a tenant with filtering
func (r *GormSalesReturnRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.SalesReturn, error) {
	var ms []models.SalesReturnModel
	query := r.db.WithContext(ctx).Model(&models.SalesReturnModel{}).Where("tenant_id = ?", tenantID)
	if err := salesReturnListSpec.applyFilter(query, filter).Find(&ms).Error; err != nil {
		return nil, err
	}
	returns := make([]trade.SalesReturn, len(ms))
	for i := range ms {
		returns[i] = *ms[i].ToDomain()
	}
	return returns, nil
}

// Save creates or updates a sales return
func (r *GormSalesReturnRepository) Save(ctx context.Context, sr *trade.SalesReturn) error {
	return r.db.WithContext(ctx).Save(models.SalesReturnModelFromDomain(sr)).Error
}

// SaveBatch upserts sales returns in batches
func (r *GormSalesReturnRepository) SaveBatch(ctx context.Context, returns []*trade.SalesReturn) error {
	if len(returns) == 0 {
		return nil
	}
	ms := make([]*models.SalesReturnModel, len(returns))
	for i, sr := range returns {
		ms[i] = models.SalesReturnModelFromDomain(sr)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(ms, saveBatchSize).Error
}

// CountForTenant counts sales returns for a tenant with optional filters
func (r *GormSalesReturnRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SalesReturnModel{}).Where("tenant_id = ?", tenantID)
	if err := salesReturnListSpec.applyFilterWithoutPagination(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSalesReturnRepository implements SalesReturnRepository
var _ trade.SalesReturnRepository = (*GormSalesReturnRepository)(nil)
