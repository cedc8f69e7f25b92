package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item is a stocked ingredient or supply
type Item struct {
	shared.TenantEntity
	SKU          string
	Name         string
	Category     string
	Unit         string
	Quantity     decimal.Decimal
	ReorderLevel decimal.Decimal // Minimum stock threshold for alerts
	UnitCost     decimal.Decimal
}

// NewItem creates an item with no stock
func NewItem(tenantID uuid.UUID, sku, name, category, unit string, unitCost decimal.Decimal) (*Item, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	return &Item{
		TenantEntity: shared.NewTenantEntity(tenantID),
		SKU:          sku,
		Name:         name,
		Category:     category,
		Unit:         unit,
		Quantity:     decimal.Zero,
		ReorderLevel: decimal.Zero,
		UnitCost:     unitCost,
	}, nil
}

// IncreaseStock adds received quantity
func (i *Item) IncreaseStock(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	i.Quantity = i.Quantity.Add(quantity)
	i.Touch()
	return nil
}

// DecreaseStock removes consumed quantity
func (i *Item) DecreaseStock(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity.GreaterThan(i.Quantity) {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	}
	i.Quantity = i.Quantity.Sub(quantity)
	i.Touch()
	return nil
}

// SetReorderLevel sets the minimum stock threshold for alerts
func (i *Item) SetReorderLevel(level decimal.Decimal) error {
	if level.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Reorder level cannot be negative")
	}
	i.ReorderLevel = level
	i.Touch()
	return nil
}

// IsLowStock returns true if quantity is at or below the reorder level
func (i *Item) IsLowStock() bool {
	return i.ReorderLevel.IsPositive() && i.Quantity.LessThanOrEqual(i.ReorderLevel)
}

// StockValue returns quantity * unit cost
func (i *Item) StockValue() decimal.Decimal {
	return i.Quantity.Mul(i.UnitCost)
}

// StockLevel is the alert category of an item's quantity
func (i *Item) StockLevel() string {
	switch {
	case i.Quantity.IsZero():
		return StockLevelOut
	case i.IsLowStock():
		return StockLevelLow
	default:
		return StockLevelOK
	}
}

// Stock levels reported by StockLevel
const (
	StockLevelOK  = "OK"
	StockLevelLow = "LOW"
	StockLevelOut = "OUT"
)

// LastUpdated returns when the item last changed
func (i *Item) LastUpdated() time.Time {
	return i.UpdatedAt
}
