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

var customerInvoiceListSpec = listSpec{
	searchColumns: []string{"invoice_number", "order_number", "customer_name"},
	sortFields:    CustomerInvoiceSortFields,
	defaultSort:   "issued_at",
	filterColumns: map[string]string{"status": "status", "order_number": "order_number"},
	dateColumn:    "issued_at",
}

// GormCustomerInvoiceRepository implements CustomerInvoiceRepository using GORM
type GormCustomerInvoiceRepository struct {
	db *gorm.DB
}

// NewGormCustomerInvoiceRepository creates a new GormCustomerInvoiceRepository
func NewGormCustomerInvoiceRepository(db *gorm.DB) *GormCustomerInvoiceRepository {
	return &GormCustomerInvoiceRepository{db: db}
}

// FindAllForTenant finds all invoices for a tenant with filtering
func (r *GormCustomerInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.CustomerInvoice, error) {
	var ms []models.CustomerInvoiceModel
	query := r.db.WithContext(ctx).Model(&models.CustomerInvoiceModel{}).Where("tenant_id = ?", tenantID)
	if err := customerInvoiceListSpec.applyFilter(query, filter).Find(&ms).Error; err != nil {
		return nil, err
	}
	invoices := make([]trade.CustomerInvoice, len(ms))
	for i := range ms {
		invoices[i] = *ms[i].ToDomain()
	}
	return invoices, nil
}

// Save creates or updates an invoice
func (r *GormCustomerInvoiceRepository) Save(ctx context.Context, invoice *trade.CustomerInvoice) error {
	return r.db.WithContext(ctx).Save(models.CustomerInvoiceModelFromDomain(invoice)).Error
}

// SaveBatch upserts invoices in batches
func (r *GormCustomerInvoiceRepository) SaveBatch(ctx context.Context, invoices []*trade.CustomerInvoice) error {
	if len(invoices) == 0 {
		return nil
	}
	ms := make([]*models.CustomerInvoiceModel, len(invoices))
	for i, inv := range invoices {
		ms[i] = models.CustomerInvoiceModelFromDomain(inv)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(ms, saveBatchSize).Error
}

// CountForTenant counts invoices for a tenant with optional filters
func (r *GormCustomerInvoiceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.CustomerInvoiceModel{}).Where("tenant_id = ?", tenantID)
	if err := customerInvoiceListSpec.applyFilterWithoutPagination(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ trade.CustomerInvoiceRepository = (*GormCustomerInvoiceRepository)(nil)
