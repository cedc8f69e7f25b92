package models

import (
	"time"

	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// VoucherModel is the persistence model for the Voucher entity.
type VoucherModel struct {
	TenantModel
	Code         string                `gorm:"type:varchar(50);not null;uniqueIndex:idx_voucher_tenant_code,priority:2"`
	Description  string                `gorm:"type:varchar(500)"`
	DiscountType finance.DiscountType  `gorm:"type:varchar(20);not null"`
	Value        decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Status       finance.VoucherStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	ValidFrom    time.Time             `gorm:"not null;index"`
	ValidUntil   time.Time             `gorm:"not null"`
	UsageCount   int                   `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (VoucherModel) TableName() string {
	return "vouchers"
}

// ToDomain converts the persistence model to a domain Voucher.
func (m *VoucherModel) ToDomain() *finance.Voucher {
	return &finance.Voucher{
		TenantEntity: m.ToDomainTenantEntity(),
		Code:         m.Code,
		Description:  m.Description,
		DiscountType: m.DiscountType,
		Value:        m.Value,
		Status:       m.Status,
		ValidFrom:    m.ValidFrom,
		ValidUntil:   m.ValidUntil,
		UsageCount:   m.UsageCount,
	}
}

// FromDomain populates the persistence model from a domain Voucher.
func (m *VoucherModel) FromDomain(v *finance.Voucher) {
	m.FromDomainTenantEntity(v.TenantEntity)
	m.Code = v.Code
	m.Description = v.Description
	m.DiscountType = v.DiscountType
	m.Value = v.Value
	m.Status = v.Status
	m.ValidFrom = v.ValidFrom
	m.ValidUntil = v.ValidUntil
	m.UsageCount = v.UsageCount
}

// VoucherModelFromDomain creates a new persistence model from a domain Voucher.
func VoucherModelFromDomain(v *finance.Voucher) *VoucherModel {
	m := &VoucherModel{}
	m.FromDomain(v)
	return m
}

// PaymentModel is the persistence model for the Payment entity.
type PaymentModel struct {
	TenantModel
	Reference   string                `gorm:"type:varchar(50);not null;uniqueIndex:idx_payment_tenant_reference,priority:2"`
	OrderNumber string                `gorm:"type:varchar(50);index"`
	Method      finance.PaymentMethod `gorm:"type:varchar(20);not null"`
	Status      finance.PaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Amount      decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	PaidAt      time.Time             `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		TenantEntity: m.ToDomainTenantEntity(),
		Reference:    m.Reference,
		OrderNumber:  m.OrderNumber,
		Method:       m.Method,
		Status:       m.Status,
		Amount:       m.Amount,
		PaidAt:       m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Payment.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainTenantEntity(p.TenantEntity)
	m.Reference = p.Reference
	m.OrderNumber = p.OrderNumber
	m.Method = p.Method
	m.Status = p.Status
	m.Amount = p.Amount
	m.PaidAt = p.PaidAt
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
