// Package models holds the GORM persistence models of the back-office records
// and their conversions to and from the domain entities.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
)

// TenantModel provides common persistence fields for tenant-scoped records.
type TenantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FromDomainTenantEntity populates TenantModel from a domain TenantEntity
func (m *TenantModel) FromDomainTenantEntity(e shared.TenantEntity) {
	m.ID = e.ID
	m.TenantID = e.TenantID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// ToDomainTenantEntity converts TenantModel to a domain TenantEntity
func (m *TenantModel) ToDomainTenantEntity() shared.TenantEntity {
	return shared.TenantEntity{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		TenantID: m.TenantID,
	}
}

// All returns one zero value of every model, in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&OrderModel{},
		&CustomerInvoiceModel{},
		&SalesReturnModel{},
		&VoucherModel{},
		&PaymentModel{},
		&InventoryItemModel{},
	}
}
