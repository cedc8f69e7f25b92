package models

import (
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryItemModel is the persistence model for the inventory Item entity.
type InventoryItemModel struct {
	TenantModel
	SKU          string          `gorm:"column:sku;type:varchar(50);not null;uniqueIndex:idx_inventory_tenant_sku,priority:2"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Category     string          `gorm:"type:varchar(100);index"`
	Unit         string          `gorm:"type:varchar(20);not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReorderLevel decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the persistence model to a domain Item.
func (m *InventoryItemModel) ToDomain() *inventory.Item {
	return &inventory.Item{
		TenantEntity: m.ToDomainTenantEntity(),
		SKU:          m.SKU,
		Name:         m.Name,
		Category:     m.Category,
		Unit:         m.Unit,
		Quantity:     m.Quantity,
		ReorderLevel: m.ReorderLevel,
		UnitCost:     m.UnitCost,
	}
}

// FromDomain populates the persistence model from a domain Item.
func (m *InventoryItemModel) FromDomain(i *inventory.Item) {
	m.FromDomainTenantEntity(i.TenantEntity)
	m.SKU = i.SKU
	m.Name = i.Name
	m.Category = i.Category
	m.Unit = i.Unit
	m.Quantity = i.Quantity
	m.ReorderLevel = i.ReorderLevel
	m.UnitCost = i.UnitCost
}

// InventoryItemModelFromDomain creates a new persistence model from a domain Item.
func InventoryItemModelFromDomain(i *inventory.Item) *InventoryItemModel {
	m := &InventoryItemModel{}
	m.FromDomain(i)
	return m
}
