package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" when the input is empty or anything other than asc.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns sortField when the whitelist allows it, otherwise defaultField.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed != "" && allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"created_at":    true,
	"order_number":  true,
	"customer_name": true,
	"channel":       true,
	"status":        true,
	"total":         true,
	"placed_at":     true,
}

// CustomerInvoiceSortFields contains allowed sort fields for customer invoices
var CustomerInvoiceSortFields = map[string]bool{
	"created_at":     true,
	"invoice_number": true,
	"order_number":   true,
	"customer_name":  true,
	"status":         true,
	"amount":         true,
	"issued_at":      true,
	"due_at":         true,
}

// SalesReturnSortFields contains allowed sort fields for sales returns
var SalesReturnSortFields = map[string]bool{
	"created_at":    true,
	"return_number": true,
	"order_number":  true,
	"customer_name": true,
	"status":        true,
	"amount":        true,
	"requested_at":  true,
}

// VoucherSortFields contains allowed sort fields for vouchers
var VoucherSortFields = map[string]bool{
	"created_at":  true,
	"code":        true,
	"status":      true,
	"value":       true,
	"valid_from":  true,
	"valid_until": true,
	"usage_count": true,
}

// PaymentSortFields contains allowed sort fields for payments
var PaymentSortFields = map[string]bool{
	"created_at":   true,
	"reference":    true,
	"order_number": true,
	"method":       true,
	"status":       true,
	"amount":       true,
	"paid_at":      true,
}

// InventoryItemSortFields contains allowed sort fields for inventory items
var InventoryItemSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"sku":        true,
	"name":       true,
	"category":   true,
	"quantity":   true,
	"unit_cost":  true,
}
