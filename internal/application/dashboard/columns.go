package dashboard

import (
	"github.com/pos/backoffice/internal/domain/datatable"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/pos/backoffice/internal/domain/trade"
)

// rowNumber numbers rows within the visible page. It has no accessor, so
// search never matches on it.
func rowNumber[R any]() datatable.Column[R] {
	return datatable.Column[R]{
		Header: "#",
		Key:    "row",
		Render: func(_ R, rowIndex int) any { return rowIndex + 1 },
	}
}

func orderColumns(rc renderContext) []datatable.Column[trade.Order] {
	return []datatable.Column[trade.Order]{
		rowNumber[trade.Order](),
		datatable.Field(rc.text("Order #"), "order_number", func(o trade.Order) any { return o.OrderNumber }),
		datatable.Field(rc.text("Customer"), "customer", func(o trade.Order) any { return o.CustomerName }),
		datatable.Field(rc.text("Channel"), "channel", func(o trade.Order) any { return o.Channel }),
		datatable.Field(rc.text("Table"), "table", func(o trade.Order) any { return o.TableNumber }),
		datatable.Field(rc.text("Status"), "status", func(o trade.Order) any { return o.Status }),
		{
			Header:   rc.text("Total"),
			Key:      "total",
			Accessor: func(o trade.Order) any { return o.Total },
			Render:   func(o trade.Order, _ int) any { return rc.money(o.Total) },
		},
		{
			Header:   rc.text("Placed At"),
			Key:      "placed_at",
			Accessor: func(o trade.Order) any { return o.PlacedAt },
			Render:   func(o trade.Order, _ int) any { return rc.when(o.PlacedAt) },
		},
		datatable.Field(rc.text("Seller"), "seller", func(o trade.Order) any { return o.SellerName }),
		datatable.Field(rc.text("Courier"), "courier", func(o trade.Order) any { return o.CourierName }),
	}
}

func invoiceColumns(rc renderContext) []datatable.Column[trade.CustomerInvoice] {
	return []datatable.Column[trade.CustomerInvoice]{
		rowNumber[trade.CustomerInvoice](),
		datatable.Field(rc.text("Invoice #"), "invoice_number", func(i trade.CustomerInvoice) any { return i.InvoiceNumber }),
		datatable.Field(rc.text("Order #"), "order_number", func(i trade.CustomerInvoice) any { return i.OrderNumber }),
		datatable.Field(rc.text("Customer"), "customer", func(i trade.CustomerInvoice) any { return i.CustomerName }),
		datatable.Field(rc.text("Status"), "status", func(i trade.CustomerInvoice) any { return i.Status }),
		{
			Header:   rc.text("Amount"),
			Key:      "amount",
			Accessor: func(i trade.CustomerInvoice) any { return i.Amount },
			Render:   func(i trade.CustomerInvoice, _ int) any { return rc.money(i.Amount) },
		},
		{
			Header:   rc.text("Issued At"),
			Key:      "issued_at",
			Accessor: func(i trade.CustomerInvoice) any { return i.IssuedAt },
			Render:   func(i trade.CustomerInvoice, _ int) any { return rc.when(i.IssuedAt) },
		},
		{
			Header:   rc.text("Due At"),
			Key:      "due_at",
			Accessor: func(i trade.CustomerInvoice) any { return i.DueAt },
			Render:   func(i trade.CustomerInvoice, _ int) any { return rc.whenPtr(i.DueAt) },
		},
	}
}

func returnColumns(rc renderContext) []datatable.Column[trade.SalesReturn] {
	return []datatable.Column[trade.SalesReturn]{
		rowNumber[trade.SalesReturn](),
		datatable.Field(rc.text("Return #"), "return_number", func(r trade.SalesReturn) any { return r.ReturnNumber }),
		datatable.Field(rc.text("Order #"), "order_number", func(r trade.SalesReturn) any { return r.OrderNumber }),
		datatable.Field(rc.text("Customer"), "customer", func(r trade.SalesReturn) any { return r.CustomerName }),
		datatable.Field(rc.text("Reason"), "reason", func(r trade.SalesReturn) any { return r.Reason }),
		datatable.Field(rc.text("Status"), "status", func(r trade.SalesReturn) any { return r.Status }),
		{
			Header:   rc.text("Amount"),
			Key:      "amount",
			Accessor: func(r trade.SalesReturn) any { return r.Amount },
			Render:   func(r trade.SalesReturn, _ int) any { return rc.money(r.Amount) },
		},
		{
			Header:   rc.text("Requested At"),
			Key:      "requested_at",
			Accessor: func(r trade.SalesReturn) any { return r.RequestedAt },
			Render:   func(r trade.SalesReturn, _ int) any { return rc.when(r.RequestedAt) },
		},
	}
}

func voucherColumns(rc renderContext) []datatable.Column[finance.Voucher] {
	return []datatable.Column[finance.Voucher]{
		rowNumber[finance.Voucher](),
		datatable.Field(rc.text("Code"), "code", func(v finance.Voucher) any { return v.Code }),
		datatable.Field(rc.text("Description"), "description", func(v finance.Voucher) any { return v.Description }),
		datatable.Field(rc.text("Type"), "discount_type", func(v finance.Voucher) any { return string(v.DiscountType) }),
		{
			Header:   rc.text("Value"),
			Key:      "value",
			Accessor: func(v finance.Voucher) any { return v.Value },
			Render: func(v finance.Voucher, _ int) any {
				if v.DiscountType == finance.DiscountPercent {
					return rc.printer.Sprintf("%s%%", v.Value.String())
				}
				return rc.money(v.Value)
			},
		},
		datatable.Field(rc.text("Status"), "status", func(v finance.Voucher) any { return v.Status }),
		{
			Header:   rc.text("Valid From"),
			Key:      "valid_from",
			Accessor: func(v finance.Voucher) any { return v.ValidFrom },
			Render:   func(v finance.Voucher, _ int) any { return rc.when(v.ValidFrom) },
		},
		{
			Header:   rc.text("Valid Until"),
			Key:      "valid_until",
			Accessor: func(v finance.Voucher) any { return v.ValidUntil },
			Render:   func(v finance.Voucher, _ int) any { return rc.when(v.ValidUntil) },
		},
		datatable.Field(rc.text("Uses"), "usage_count", func(v finance.Voucher) any { return v.UsageCount }),
	}
}

func paymentColumns(rc renderContext) []datatable.Column[finance.Payment] {
	return []datatable.Column[finance.Payment]{
		rowNumber[finance.Payment](),
		datatable.Field(rc.text("Reference"), "reference", func(p finance.Payment) any { return p.Reference }),
		datatable.Field(rc.text("Order #"), "order_number", func(p finance.Payment) any { return p.OrderNumber }),
		datatable.Field(rc.text("Method"), "method", func(p finance.Payment) any { return string(p.Method) }),
		datatable.Field(rc.text("Status"), "status", func(p finance.Payment) any { return p.Status }),
		{
			Header:   rc.text("Amount"),
			Key:      "amount",
			Accessor: func(p finance.Payment) any { return p.Amount },
			Render:   func(p finance.Payment, _ int) any { return rc.money(p.Amount) },
		},
		{
			Header:   rc.text("Paid At"),
			Key:      "paid_at",
			Accessor: func(p finance.Payment) any { return p.PaidAt },
			Render:   func(p finance.Payment, _ int) any { return rc.when(p.PaidAt) },
		},
	}
}

func inventoryColumns(rc renderContext) []datatable.Column[inventory.Item] {
	return []datatable.Column[inventory.Item]{
		rowNumber[inventory.Item](),
		datatable.Field(rc.text("SKU"), "sku", func(i inventory.Item) any { return i.SKU }),
		datatable.Field(rc.text("Name"), "name", func(i inventory.Item) any { return i.Name }),
		datatable.Field(rc.text("Category"), "category", func(i inventory.Item) any { return i.Category }),
		{
			Header:   rc.text("Quantity"),
			Key:      "quantity",
			Accessor: func(i inventory.Item) any { return i.Quantity },
			Render:   func(i inventory.Item, _ int) any { return rc.quantity(i.Quantity) },
		},
		datatable.Field(rc.text("Unit"), "unit", func(i inventory.Item) any { return i.Unit }),
		{
			Header:   rc.text("Reorder Level"),
			Key:      "reorder_level",
			Accessor: func(i inventory.Item) any { return i.ReorderLevel },
			Render:   func(i inventory.Item, _ int) any { return rc.quantity(i.ReorderLevel) },
		},
		{
			Header:   rc.text("Unit Cost"),
			Key:      "unit_cost",
			Accessor: func(i inventory.Item) any { return i.UnitCost },
			Render:   func(i inventory.Item, _ int) any { return rc.money(i.UnitCost) },
		},
		datatable.Field(rc.text("Stock"), "stock_level", func(i inventory.Item) any { return i.StockLevel() }),
		{
			Header:   rc.text("Updated At"),
			Key:      "updated_at",
			Accessor: func(i inventory.Item) any { return i.LastUpdated() },
			Render:   func(i inventory.Item, _ int) any { return rc.when(i.LastUpdated()) },
		},
	}
}
