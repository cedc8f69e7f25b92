package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var voucherListSpec = listSpec{
	searchColumns: []string{"code", "description"},
	sortFields:    VoucherSortFields,
	defaultSort:   "valid_from",
	filterColumns: map[string]string{"status": "status", "discount_type": "discount_type"},
	dateColumn:    "valid_from",
}

// GormVoucherRepository implements VoucherRepository using GORM
type GormVoucherRepository struct {
	db *gorm.DB
}

// NewGormVoucherRepository creates a new GormVoucherRepository
func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

// FindAllForTenant finds all vouchers for a tenant with filtering
func (r *GormVoucherRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.Voucher, error) {
	var ms []models.VoucherModel
	query := r.db.WithContext(ctx).Model(&models.VoucherModel{}).Where("tenant_id = ?", tenantID)
	if err := voucherListSpec.applyFilter(query, filter).Find(&ms).Error; err != nil {
		return nil, err
	}
	vouchers := make([]finance.Voucher, len(ms))
	for i := range ms {
		vouchers[i] = *ms[i].ToDomain()
	}
	return vouchers, nil
}

// FindByCode finds a voucher by code within a tenant
func (r *GormVoucherRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*finance.Voucher, error) {
	var m models.VoucherModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// Save creates or updates a voucher
func (r *GormVoucherRepository) Save(ctx context.Context, voucher *finance.Voucher) error {
	return r.db.WithContext(ctx).Save(models.VoucherModelFromDomain(voucher)).Error
}

// SaveBatch upserts vouchers in batches
func (r *GormVoucherRepository) SaveBatch(ctx context.Context, vouchers []*finance.Voucher) error {
	if len(vouchers) == 0 {
		return nil
	}
	ms := make([]*models.VoucherModel, len(vouchers))
	for i, v := range vouchers {
		ms[i] = models.VoucherModelFromDomain(v)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(ms, saveBatchSize).Error
}

// CountForTenant counts vouchers for a tenant with optional filters
func (r *GormVoucherRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.VoucherModel{}).Where("tenant_id = ?", tenantID)
	if err := voucherListSpec.applyFilterWithoutPagination(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ finance.VoucherRepository = (*GormVoucherRepository)(nil)
