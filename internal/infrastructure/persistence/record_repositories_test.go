package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func TestGormCustomerInvoiceRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormCustomerInvoiceRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()

	draft, err := trade.NewCustomerInvoice(tenantID, "INV-001", "ORD-0001", "Nour", decimal.NewFromInt(40), day)
	require.NoError(t, err)
	issued, err := trade.NewCustomerInvoice(tenantID, "INV-002", "ORD-0002", "Karim", decimal.NewFromInt(55), day.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, issued.Issue(day.Add(72*time.Hour)))
	require.NoError(t, repo.SaveBatch(ctx, []*trade.CustomerInvoice{draft, issued}))

	t.Run("round trips due date", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["status"] = string(trade.InvoiceStatusIssued)
		invoices, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		require.Len(t, invoices, 1)
		require.NotNil(t, invoices[0].DueAt)
		assert.True(t, invoices[0].DueAt.Equal(day.Add(72*time.Hour)))
	})

	t.Run("searches customer name", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "nou"
		count, err := repo.CountForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.SaveBatch(ctx, nil))
	})
}

func TestGormSalesReturnRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSalesReturnRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()

	sr, err := trade.NewSalesReturn(tenantID, "RET-001", "ORD-0007", "Cold food", decimal.NewFromFloat(12.5), day)
	require.NoError(t, err)
	sr.CustomerName = "Lina"
	require.NoError(t, repo.Save(ctx, sr))

	require.NoError(t, sr.TransitionTo(trade.ReturnStatusApproved))
	require.NoError(t, repo.Save(ctx, sr))

	filter := shared.DefaultFilter()
	filter.Search = "cold"
	returns, err := repo.FindAllForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	require.Len(t, returns, 1)
	assert.Equal(t, trade.ReturnStatusApproved, returns[0].Status)
	assert.Equal(t, "Lina", returns[0].CustomerName)
	assert.True(t, decimal.NewFromFloat(12.5).Equal(returns[0].Amount))
}

func TestGormVoucherRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormVoucherRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()

	v, err := finance.NewVoucher(tenantID, "SUMMER10", "Summer promo", finance.DiscountPercent, decimal.NewFromInt(10), day, day.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, v.Redeem(day.Add(time.Hour)))
	require.NoError(t, repo.Save(ctx, v))

	t.Run("finds by code", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, tenantID, "SUMMER10")
		require.NoError(t, err)
		assert.Equal(t, 1, found.UsageCount)
		assert.Equal(t, finance.DiscountPercent, found.DiscountType)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, tenantID, "WINTER")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("filters by discount type", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["discount_type"] = string(finance.DiscountFixed)
		vouchers, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		assert.Empty(t, vouchers)
	})
}

func TestGormPaymentRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormPaymentRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()

	var batch []*finance.Payment
	for i, method := range []finance.PaymentMethod{finance.PaymentMethodCash, finance.PaymentMethodCard, finance.PaymentMethodCard} {
		p, err := finance.NewPayment(tenantID, "PAY-00"+string(rune('1'+i)), "ORD-0001", method, decimal.NewFromInt(int64(5+i)), day.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		batch = append(batch, p)
	}
	require.NoError(t, repo.SaveBatch(ctx, batch))

	filter := shared.DefaultFilter()
	filter.Filters["method"] = string(finance.PaymentMethodCard)
	count, err := repo.CountForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	filter = shared.Filter{OrderBy: "amount", OrderDir: "asc"}
	payments, err := repo.FindAllForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, "PAY-001", payments[0].Reference)
}

func TestGormInventoryItemRepository(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormInventoryItemRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()

	flour, err := inventory.NewItem(tenantID, "FLR-01", "Flour", "Dry goods", "kg", decimal.NewFromFloat(1.2))
	require.NoError(t, err)
	require.NoError(t, flour.IncreaseStock(decimal.NewFromInt(25)))
	require.NoError(t, flour.SetReorderLevel(decimal.NewFromInt(30)))
	basil, err := inventory.NewItem(tenantID, "HRB-02", "Basil", "Herbs", "bunch", decimal.NewFromFloat(0.8))
	require.NoError(t, err)
	require.NoError(t, repo.SaveBatch(ctx, []*inventory.Item{flour, basil}))

	t.Run("finds by sku with stock", func(t *testing.T) {
		found, err := repo.FindBySKU(ctx, tenantID, "FLR-01")
		require.NoError(t, err)
		assert.True(t, found.IsLowStock())
		assert.Equal(t, inventory.StockLevelLow, found.StockLevel())
	})

	t.Run("filters by category", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["category"] = "Herbs"
		items, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Basil", items[0].Name)
		assert.Equal(t, inventory.StockLevelOut, items[0].StockLevel())
	})
}
