package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var paymentListSpec = listSpec{
	searchColumns: []string{"reference", "order_number"},
	sortFields:    PaymentSortFields,
	defaultSort:   "paid_at",
	filterColumns: map[string]string{"status": "status", "method": "method"},
	dateColumn:    "paid_at",
}

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindAllForTenant finds all payments for a tenant with filtering
func (r *GormPaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.Payment, error) {
	var ms []models.PaymentModel
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{}).Where("tenant_id = ?", tenantID)
	if err := paymentListSpec.applyFilter(query, filter).Find(&ms).Error; err != nil {
		return nil, err
	}
	payments := make([]finance.Payment, len(ms))
	for i := range ms {
		payments[i] = *ms[i].ToDomain()
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	return r.db.WithContext(ctx).Save(models.PaymentModelFromDomain(payment)).Error
}

// SaveBatch upserts payments in batches
func (r *GormPaymentRepository) SaveBatch(ctx context.Context, payments []*finance.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	ms := make([]*models.PaymentModel, len(payments))
	for i, p := range payments {
		ms[i] = models.PaymentModelFromDomain(p)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(ms, saveBatchSize).Error
}

// CountForTenant counts payments for a tenant with optional filters
func (r *GormPaymentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{}).Where("tenant_id = ?", tenantID)
	if err := paymentListSpec.applyFilterWithoutPagination(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
