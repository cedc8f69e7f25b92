// Package seed generates deterministic demo data for the back-office screens.
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// Counts is the number of records to generate per type
type Counts struct {
	Orders    int
	Invoices  int
	Returns   int
	Vouchers  int
	Payments  int
	Inventory int
}

// Dataset holds one generated batch of every record type
type Dataset struct {
	Orders    []*trade.Order
	Invoices  []*trade.CustomerInvoice
	Returns   []*trade.SalesReturn
	Vouchers  []*finance.Voucher
	Payments  []*finance.Payment
	Inventory []*inventory.Item
}

// Size returns the total number of records
func (d *Dataset) Size() int {
	return len(d.Orders) + len(d.Invoices) + len(d.Returns) + len(d.Vouchers) + len(d.Payments) + len(d.Inventory)
}

// Generator produces records from a seeded faker. Two generators with the same
// seed and clock produce the same field values.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewGenerator creates a generator. Seed 0 picks a random seed.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		faker: gofakeit.New(uint64(seed)),
		now:   now.UTC().Truncate(time.Second),
	}
}

var returnReasons = []string{
	"Wrong item delivered",
	"Food arrived cold",
	"Missing items",
	"Order delayed",
	"Quality issue",
	"Customer changed mind",
	"Allergy concern",
}

var inventoryCategories = []struct {
	name string
	unit string
	gen  func(*gofakeit.Faker) string
}{
	{"Produce", "kg", func(f *gofakeit.Faker) string { return f.Vegetable() }},
	{"Fruit", "kg", func(f *gofakeit.Faker) string { return f.Fruit() }},
	{"Beverages", "bottle", func(f *gofakeit.Faker) string { return f.Drink() }},
	{"Snacks", "pack", func(f *gofakeit.Faker) string { return f.Snack() }},
	{"Desserts", "piece", func(f *gofakeit.Faker) string { return f.Dessert() }},
}

// Generate builds a dataset for tenantID
func (g *Generator) Generate(tenantID uuid.UUID, counts Counts) (*Dataset, error) {
	d := &Dataset{}
	var err error

	if d.Orders, err = g.orders(tenantID, counts.Orders); err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}
	if d.Invoices, err = g.invoices(tenantID, counts.Invoices, d.Orders); err != nil {
		return nil, fmt.Errorf("invoices: %w", err)
	}
	if d.Returns, err = g.returns(tenantID, counts.Returns, d.Orders); err != nil {
		return nil, fmt.Errorf("returns: %w", err)
	}
	if d.Vouchers, err = g.vouchers(tenantID, counts.Vouchers); err != nil {
		return nil, fmt.Errorf("vouchers: %w", err)
	}
	if d.Payments, err = g.payments(tenantID, counts.Payments, d.Orders); err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	if d.Inventory, err = g.inventory(tenantID, counts.Inventory); err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	return d, nil
}

// pastMoment returns a time within the last days days
func (g *Generator) pastMoment(days int) time.Time {
	minutes := g.faker.Number(0, days*24*60)
	return g.now.Add(-time.Duration(minutes) * time.Minute)
}

func (g *Generator) money(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Price(min, max)).Round(2)
}

// orderPath is the happy path of an order of the given channel
func orderPath(channel trade.Channel) []trade.OrderStatus {
	if channel == trade.ChannelDelivery {
		return []trade.OrderStatus{trade.OrderStatusPreparing, trade.OrderStatusReady, trade.OrderStatusOutForDelivery, trade.OrderStatusCompleted}
	}
	return []trade.OrderStatus{trade.OrderStatusPreparing, trade.OrderStatusReady, trade.OrderStatusCompleted}
}

func (g *Generator) orders(tenantID uuid.UUID, n int) ([]*trade.Order, error) {
	channels := []trade.Channel{trade.ChannelDineIn, trade.ChannelTakeaway, trade.ChannelDelivery}
	orders := make([]*trade.Order, 0, n)

	for i := 1; i <= n; i++ {
		channel := channels[g.faker.Number(0, len(channels)-1)]
		o, err := trade.NewOrder(tenantID, fmt.Sprintf("ORD-%05d", i), g.faker.Name(), channel, g.money(4, 180), g.pastMoment(30))
		if err != nil {
			return nil, err
		}
		o.SellerName = g.faker.FirstName()

		switch channel {
		case trade.ChannelDineIn:
			if err := o.AssignTable(fmt.Sprintf("T%d", g.faker.Number(1, 24))); err != nil {
				return nil, err
			}
		case trade.ChannelDelivery:
			if err := o.AssignCourier(g.faker.FirstName()); err != nil {
				return nil, err
			}
		}

		path := orderPath(channel)
		steps := g.faker.Number(0, len(path))
		for _, status := range path[:steps] {
			if err := o.TransitionTo(status); err != nil {
				return nil, err
			}
		}
		if steps < 2 && g.faker.Number(1, 10) == 1 {
			if err := o.TransitionTo(trade.OrderStatusCancelled); err != nil {
				return nil, err
			}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// pickOrder returns a referenced order number, customer and total
func (g *Generator) pickOrder(orders []*trade.Order) (string, string, decimal.Decimal) {
	if len(orders) == 0 {
		return fmt.Sprintf("ORD-%05d", g.faker.Number(1, 99999)), g.faker.Name(), g.money(4, 180)
	}
	o := orders[g.faker.Number(0, len(orders)-1)]
	return o.OrderNumber, o.CustomerName, o.Total
}

func (g *Generator) invoices(tenantID uuid.UUID, n int, orders []*trade.Order) ([]*trade.CustomerInvoice, error) {
	invoices := make([]*trade.CustomerInvoice, 0, n)
	for i := 1; i <= n; i++ {
		orderNumber, customer, total := g.pickOrder(orders)
		if !total.IsPositive() {
			total = g.money(4, 180)
		}
		inv, err := trade.NewCustomerInvoice(tenantID, fmt.Sprintf("INV-%05d", i), orderNumber, customer, total, g.pastMoment(45))
		if err != nil {
			return nil, err
		}

		switch g.faker.Number(0, 9) {
		case 0:
			// stays draft
		case 1:
			if err := inv.Void(); err != nil {
				return nil, err
			}
		default:
			if err := inv.Issue(inv.IssuedAt.AddDate(0, 0, g.faker.Number(7, 30))); err != nil {
				return nil, err
			}
			if g.faker.Bool() {
				if err := inv.MarkPaid(); err != nil {
					return nil, err
				}
			}
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (g *Generator) returns(tenantID uuid.UUID, n int, orders []*trade.Order) ([]*trade.SalesReturn, error) {
	returns := make([]*trade.SalesReturn, 0, n)
	for i := 1; i <= n; i++ {
		orderNumber, customer, total := g.pickOrder(orders)
		amount := total.Mul(decimal.NewFromFloat(g.faker.Float64Range(0.1, 1))).Round(2)
		if !amount.IsPositive() {
			amount = decimal.NewFromInt(1)
		}
		reason := returnReasons[g.faker.Number(0, len(returnReasons)-1)]
		sr, err := trade.NewSalesReturn(tenantID, fmt.Sprintf("RET-%05d", i), orderNumber, reason, amount, g.pastMoment(30))
		if err != nil {
			return nil, err
		}
		sr.CustomerName = customer

		var path []trade.ReturnStatus
		switch g.faker.Number(0, 3) {
		case 1:
			path = []trade.ReturnStatus{trade.ReturnStatusApproved}
		case 2:
			path = []trade.ReturnStatus{trade.ReturnStatusApproved, trade.ReturnStatusRefunded}
		case 3:
			path = []trade.ReturnStatus{trade.ReturnStatusRejected}
		}
		for _, status := range path {
			if err := sr.TransitionTo(status); err != nil {
				return nil, err
			}
		}
		returns = append(returns, sr)
	}
	return returns, nil
}

func (g *Generator) vouchers(tenantID uuid.UUID, n int) ([]*finance.Voucher, error) {
	vouchers := make([]*finance.Voucher, 0, n)
	for i := 1; i <= n; i++ {
		discountType := finance.DiscountPercent
		value := decimal.NewFromInt(int64(g.faker.Number(5, 50)))
		if g.faker.Bool() {
			discountType = finance.DiscountFixed
			value = g.money(2, 25)
		}

		validFrom := g.pastMoment(90)
		validUntil := validFrom.AddDate(0, 0, g.faker.Number(7, 120))
		code := fmt.Sprintf("%s%03d", strings.ToUpper(g.faker.Word()), i)
		description := fmt.Sprintf("%s %s", g.faker.Adjective(), g.faker.Dinner())

		v, err := finance.NewVoucher(tenantID, code, description, discountType, value, validFrom, validUntil)
		if err != nil {
			return nil, err
		}
		v.UsageCount = g.faker.Number(0, 200)
		if !v.ExpireIfDue(g.now) && g.faker.Number(1, 8) == 1 {
			v.Disable()
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

func (g *Generator) payments(tenantID uuid.UUID, n int, orders []*trade.Order) ([]*finance.Payment, error) {
	methods := []finance.PaymentMethod{finance.PaymentMethodCash, finance.PaymentMethodCard, finance.PaymentMethodWallet, finance.PaymentMethodVoucher}
	payments := make([]*finance.Payment, 0, n)
	for i := 1; i <= n; i++ {
		orderNumber, _, total := g.pickOrder(orders)
		if !total.IsPositive() {
			total = g.money(4, 180)
		}
		method := methods[g.faker.Number(0, len(methods)-1)]
		p, err := finance.NewPayment(tenantID, fmt.Sprintf("PAY-%05d", i), orderNumber, method, total, g.pastMoment(30))
		if err != nil {
			return nil, err
		}

		var path []finance.PaymentStatus
		switch roll := g.faker.Number(0, 9); {
		case roll < 6:
			path = []finance.PaymentStatus{finance.PaymentStatusSettled}
		case roll < 7:
			path = []finance.PaymentStatus{finance.PaymentStatusFailed}
		case roll < 8:
			path = []finance.PaymentStatus{finance.PaymentStatusSettled, finance.PaymentStatusRefunded}
		}
		for _, status := range path {
			if err := p.TransitionTo(status); err != nil {
				return nil, err
			}
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (g *Generator) inventory(tenantID uuid.UUID, n int) ([]*inventory.Item, error) {
	items := make([]*inventory.Item, 0, n)
	for i := 1; i <= n; i++ {
		cat := inventoryCategories[g.faker.Number(0, len(inventoryCategories)-1)]
		item, err := inventory.NewItem(tenantID, fmt.Sprintf("SKU-%04d", i), cat.gen(g.faker), cat.name, cat.unit, g.money(0.5, 40))
		if err != nil {
			return nil, err
		}
		if qty := g.faker.Number(0, 120); qty > 0 {
			if err := item.IncreaseStock(decimal.NewFromInt(int64(qty))); err != nil {
				return nil, err
			}
		}
		if err := item.SetReorderLevel(decimal.NewFromInt(int64(g.faker.Number(0, 30)))); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
