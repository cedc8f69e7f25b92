package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/datatable"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Screen names
const (
	ScreenOrders    = "orders"
	ScreenInvoices  = "invoices"
	ScreenReturns   = "returns"
	ScreenVouchers  = "vouchers"
	ScreenPayments  = "payments"
	ScreenInventory = "inventory"
)

// loadBatchSize is the page size used to read a tenant's full record set
const loadBatchSize = shared.MaxPageSize

// Repositories are the record sources behind the screens
type Repositories struct {
	Orders    trade.OrderRepository
	Invoices  trade.CustomerInvoiceRepository
	Returns   trade.SalesReturnRepository
	Vouchers  finance.VoucherRepository
	Payments  finance.PaymentRepository
	Inventory inventory.ItemRepository
}

// Screen is one management table. Implementations bind a record type to its
// loader, columns and filter accessors.
type Screen interface {
	Name() string
	Title() string
	// FilterField names the categorical field the category filter applies to
	FilterField() string
	info(rc renderContext) ScreenInfo
	open(ctx context.Context, tenantID uuid.UUID, rc renderContext, vs viewSpec) (tableView, error)
}

// viewSpec configures a view before any user interaction
type viewSpec struct {
	Searchable      bool
	Pageable        bool
	PageSize        int
	MaxVisiblePages int
	Category        string
	From            *time.Time
	To              *time.Time
}

// tableView is a configured view of any record type
type tableView interface {
	SetSearchTerm(term string)
	RequestPageChange(page int)
	Restore(s datatable.State)
	State() datatable.State
	FilteredCount() int
	Projection() datatable.Projection
	Summary() Summary
}

type screenDef[R any] struct {
	name        string
	title       string
	filterField string
	load        func(ctx context.Context, tenantID uuid.UUID) ([]R, error)
	columns     func(rc renderContext) []datatable.Column[R]
	category    func(R) any
	date        func(R) time.Time
	amount      func(R) decimal.Decimal
}

func (d *screenDef[R]) Name() string        { return d.name }
func (d *screenDef[R]) Title() string       { return d.title }
func (d *screenDef[R]) FilterField() string { return d.filterField }

func (d *screenDef[R]) info(rc renderContext) ScreenInfo {
	cols := d.columns(rc)
	return ScreenInfo{
		Name:        d.name,
		Title:       rc.text(d.title),
		FilterField: d.filterField,
		Columns:     datatable.Keys(cols),
		Headers:     datatable.Headers(cols),
	}
}

func (d *screenDef[R]) open(ctx context.Context, tenantID uuid.UUID, rc renderContext, vs viewSpec) (tableView, error) {
	records, err := d.load(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	v := datatable.NewView(records, d.columns(rc),
		datatable.WithSearchable(vs.Searchable),
		datatable.WithPageable(vs.Pageable),
		datatable.WithPageSize(vs.PageSize),
		datatable.WithMaxVisiblePages(vs.MaxVisiblePages),
		datatable.WithLabels(rc.labels),
		datatable.WithDirection(rc.direction),
	)
	v.SetPredicate(datatable.All[R](
		datatable.Equals[R]{Name: d.filterField, Accessor: d.category, Value: vs.Category},
		datatable.DayRange(d.name+".date", d.date, vs.From, vs.To),
	))

	return &boundView[R]{View: v, def: d}, nil
}

type boundView[R any] struct {
	*datatable.View[R]
	def *screenDef[R]
}

func (b *boundView[R]) Summary() Summary {
	return Summarize(b.Filtered(), b.def.category, b.def.amount)
}

// loadAll reads every record of a tenant, page by page, newest first
func loadAll[R any](find func(context.Context, uuid.UUID, shared.Filter) ([]R, error)) func(context.Context, uuid.UUID) ([]R, error) {
	return func(ctx context.Context, tenantID uuid.UUID) ([]R, error) {
		var all []R
		for page := 1; ; page++ {
			batch, err := find(ctx, tenantID, shared.Filter{
				Page:     page,
				PageSize: loadBatchSize,
				OrderDir: "desc",
			})
			if err != nil {
				return nil, err
			}
			all = append(all, batch...)
			if len(batch) < loadBatchSize {
				return all, nil
			}
		}
	}
}

// NewScreens builds the screen registry in display order
func NewScreens(repos Repositories) []Screen {
	return []Screen{
		&screenDef[trade.Order]{
			name:        ScreenOrders,
			title:       "Orders",
			filterField: "status",
			load:        loadAll(repos.Orders.FindAllForTenant),
			columns:     orderColumns,
			category:    func(o trade.Order) any { return o.Status },
			date:        func(o trade.Order) time.Time { return o.PlacedAt },
			amount:      func(o trade.Order) decimal.Decimal { return o.Total },
		},
		&screenDef[trade.CustomerInvoice]{
			name:        ScreenInvoices,
			title:       "Customer Invoices",
			filterField: "status",
			load:        loadAll(repos.Invoices.FindAllForTenant),
			columns:     invoiceColumns,
			category:    func(i trade.CustomerInvoice) any { return i.Status },
			date:        func(i trade.CustomerInvoice) time.Time { return i.IssuedAt },
			amount:      func(i trade.CustomerInvoice) decimal.Decimal { return i.Amount },
		},
		&screenDef[trade.SalesReturn]{
			name:        ScreenReturns,
			title:       "Sales Returns",
			filterField: "status",
			load:        loadAll(repos.Returns.FindAllForTenant),
			columns:     returnColumns,
			category:    func(r trade.SalesReturn) any { return r.Status },
			date:        func(r trade.SalesReturn) time.Time { return r.RequestedAt },
			amount:      func(r trade.SalesReturn) decimal.Decimal { return r.Amount },
		},
		// Voucher values mix percentages and fixed amounts, so they are not summed
		&screenDef[finance.Voucher]{
			name:        ScreenVouchers,
			title:       "Vouchers",
			filterField: "status",
			load:        loadAll(repos.Vouchers.FindAllForTenant),
			columns:     voucherColumns,
			category:    func(v finance.Voucher) any { return v.Status },
			date:        func(v finance.Voucher) time.Time { return v.ValidFrom },
		},
		&screenDef[finance.Payment]{
			name:        ScreenPayments,
			title:       "Payments",
			filterField: "status",
			load:        loadAll(repos.Payments.FindAllForTenant),
			columns:     paymentColumns,
			category:    func(p finance.Payment) any { return p.Status },
			date:        func(p finance.Payment) time.Time { return p.PaidAt },
			amount:      func(p finance.Payment) decimal.Decimal { return p.Amount },
		},
		&screenDef[inventory.Item]{
			name:        ScreenInventory,
			title:       "Inventory",
			filterField: "category",
			load:        loadAll(repos.Inventory.FindAllForTenant),
			columns:     inventoryColumns,
			category:    func(i inventory.Item) any { return i.Category },
			date:        func(i inventory.Item) time.Time { return i.LastUpdated() },
			amount:      func(i inventory.Item) decimal.Decimal { return i.StockValue() },
		},
	}
}
