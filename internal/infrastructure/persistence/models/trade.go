package models

import (
	"time"

	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order entity.
type OrderModel struct {
	TenantModel
	OrderNumber  string            `gorm:"type:varchar(50);not null;uniqueIndex:idx_order_tenant_number,priority:2"`
	CustomerName string            `gorm:"type:varchar(200)"`
	Channel      trade.Channel     `gorm:"type:varchar(20);not null"`
	TableNumber  string            `gorm:"type:varchar(20)"`
	Status       trade.OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Total        decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	PlacedAt     time.Time         `gorm:"not null;index"`
	SellerName   string            `gorm:"type:varchar(100)"`
	CourierName  string            `gorm:"type:varchar(100)"`
	CompletedAt  *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() *trade.Order {
	return &trade.Order{
		TenantEntity: m.ToDomainTenantEntity(),
		OrderNumber:  m.OrderNumber,
		CustomerName: m.CustomerName,
		Channel:      m.Channel,
		TableNumber:  m.TableNumber,
		Status:       m.Status,
		Total:        m.Total,
		PlacedAt:     m.PlacedAt,
		SellerName:   m.SellerName,
		CourierName:  m.CourierName,
		CompletedAt:  m.CompletedAt,
	}
}

// FromDomain populates the persistence model from a domain Order.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainTenantEntity(o.TenantEntity)
	m.OrderNumber = o.OrderNumber
	m.CustomerName = o.CustomerName
	m.Channel = o.Channel
	m.TableNumber = o.TableNumber
	m.Status = o.Status
	m.Total = o.Total
	m.PlacedAt = o.PlacedAt
	m.SellerName = o.SellerName
	m.CourierName = o.CourierName
	m.CompletedAt = o.CompletedAt
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// CustomerInvoiceModel is the persistence model for the CustomerInvoice entity.
type CustomerInvoiceModel struct {
	TenantModel
	InvoiceNumber string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	OrderNumber   string              `gorm:"type:varchar(50);not null;index"`
	CustomerName  string              `gorm:"type:varchar(200)"`
	Status        trade.InvoiceStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Amount        decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	IssuedAt      time.Time           `gorm:"not null;index"`
	DueAt         *time.Time
}

// TableName returns the table name for GORM
func (CustomerInvoiceModel) TableName() string {
	return "customer_invoices"
}

// ToDomain converts the persistence model to a domain CustomerInvoice.
func (m *CustomerInvoiceModel) ToDomain() *trade.CustomerInvoice {
	return &trade.CustomerInvoice{
		TenantEntity:  m.ToDomainTenantEntity(),
		InvoiceNumber: m.InvoiceNumber,
		OrderNumber:   m.OrderNumber,
		CustomerName:  m.CustomerName,
		Status:        m.Status,
		Amount:        m.Amount,
		IssuedAt:      m.IssuedAt,
		DueAt:         m.DueAt,
	}
}

// FromDomain populates the persistence model from a domain CustomerInvoice.
func (m *CustomerInvoiceModel) FromDomain(i *trade.CustomerInvoice) {
	m.FromDomainTenantEntity(i.TenantEntity)
	m.InvoiceNumber = i.InvoiceNumber
	m.OrderNumber = i.OrderNumber
	m.CustomerName = i.CustomerName
	m.Status = i.Status
	m.Amount = i.Amount
	m.IssuedAt = i.IssuedAt
	m.DueAt = i.DueAt
}

// CustomerInvoiceModelFromDomain creates a new persistence model from a domain CustomerInvoice.
func CustomerInvoiceModelFromDomain(i *trade.CustomerInvoice) *CustomerInvoiceModel {
	m := &CustomerInvoiceModel{}
	m.FromDomain(i)
	return m
}

// SalesReturnModel is the persistence model for the SalesReturn entity.
type SalesReturnModel struct {
	TenantModel
	ReturnNumber string             `gorm:"type:varchar(50);not null;uniqueIndex:idx_return_tenant_number,priority:2"`
	OrderNumber  string             `gorm:"type:varchar(50);not null;index"`
	CustomerName string             `gorm:"type:varchar(200)"`
	Reason       string             `gorm:"type:varchar(500);not null"`
	Status       trade.ReturnStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Amount       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	RequestedAt  time.Time          `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SalesReturnModel) TableName() string {
	return "sales_returns"
}

// ToDomain converts the persistence model to a domain SalesReturn.
func (m *SalesReturnModel) ToDomain() *trade.SalesReturn {
	return &trade.SalesReturn{
		TenantEntity: m.ToDomainTenantEntity(),
		ReturnNumber: m.ReturnNumber,
		OrderNumber:  m.OrderNumber,
		CustomerName: m.CustomerName,
		Reason:       m.Reason,
		Status:       m.Status,
		Amount:       m.Amount,
		RequestedAt:  m.RequestedAt,
	}
}

// FromDomain populates the persistence model from a domain SalesReturn.
func (m *SalesReturnModel) FromDomain(r *trade.SalesReturn) {
	m.FromDomainTenantEntity(r.TenantEntity)
	m.ReturnNumber = r.ReturnNumber
	m.OrderNumber = r.OrderNumber
	m.CustomerName = r.CustomerName
	m.Reason = r.Reason
	m.Status = r.Status
	m.Amount = r.Amount
	m.RequestedAt = r.RequestedAt
}

// SalesReturnModelFromDomain creates a new persistence model from a domain SalesReturn.
func SalesReturnModelFromDomain(r *trade.SalesReturn) *SalesReturnModel {
	m := &SalesReturnModel{}
	m.FromDomain(r)
	return m
}
