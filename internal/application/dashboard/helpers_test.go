package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/finance"
	"github.com/pos/backoffice/internal/domain/inventory"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/pos/backoffice/internal/infrastructure/cache"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/pos/backoffice/internal/infrastructure/i18n"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, orderNumber string) (*trade.Order, error) {
	args := m.Called(ctx, tenantID, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveBatch(ctx context.Context, orders []*trade.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// stubRepository serves a fixed record slice, paginated like the gorm repositories
type stubRepository[R any] struct {
	records []R
}

func (s *stubRepository[R]) FindAllForTenant(_ context.Context, _ uuid.UUID, filter shared.Filter) ([]R, error) {
	f := filter.Normalized()
	start := min(f.Offset(), len(s.records))
	end := min(start+f.PageSize, len(s.records))
	return s.records[start:end], nil
}

func (s *stubRepository[R]) Save(_ context.Context, _ *R) error { return nil }

func (s *stubRepository[R]) SaveBatch(_ context.Context, _ []*R) error { return nil }

func (s *stubRepository[R]) CountForTenant(_ context.Context, _ uuid.UUID, _ shared.Filter) (int64, error) {
	return int64(len(s.records)), nil
}

type stubVoucherRepository struct{ stubRepository[finance.Voucher] }

func (s *stubVoucherRepository) FindByCode(_ context.Context, _ uuid.UUID, _ string) (*finance.Voucher, error) {
	return nil, shared.ErrNotFound
}

type stubItemRepository struct{ stubRepository[inventory.Item] }

func (s *stubItemRepository) FindBySKU(_ context.Context, _ uuid.UUID, _ string) (*inventory.Item, error) {
	return nil, shared.ErrNotFound
}

var testBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testOrders returns orders 1..n. Even orders belong to Bob, odd ones to
// Alice; every third order is completed; order i totals i*10 and was placed
// i days after testBase.
func testOrders(tenantID uuid.UUID, n int) []trade.Order {
	orders := make([]trade.Order, n)
	for i := 1; i <= n; i++ {
		customer := "Alice Smith"
		if i%2 == 0 {
			customer = "Bob Jones"
		}
		status := trade.OrderStatusPending
		if i%3 == 0 {
			status = trade.OrderStatusCompleted
		}
		orders[i-1] = trade.Order{
			TenantEntity: shared.TenantEntity{
				BaseEntity: shared.BaseEntity{ID: uuid.New()},
				TenantID:   tenantID,
			},
			OrderNumber:  fmt.Sprintf("ORD-%03d", i),
			CustomerName: customer,
			Channel:      trade.ChannelDineIn,
			TableNumber:  "T1",
			Status:       status,
			Total:        decimal.NewFromInt(int64(i * 10)),
			PlacedAt:     testBase.AddDate(0, 0, i),
			SellerName:   "Dana",
		}
	}
	return orders
}

func testInventory(tenantID uuid.UUID) []inventory.Item {
	mk := func(sku, name, category string, qty, reorder, cost int64) inventory.Item {
		return inventory.Item{
			TenantEntity: shared.TenantEntity{
				BaseEntity: shared.BaseEntity{ID: uuid.New(), UpdatedAt: testBase},
				TenantID:   tenantID,
			},
			SKU:          sku,
			Name:         name,
			Category:     category,
			Unit:         "kg",
			Quantity:     decimal.NewFromInt(qty),
			ReorderLevel: decimal.NewFromInt(reorder),
			UnitCost:     decimal.NewFromInt(cost),
		}
	}
	return []inventory.Item{
		mk("SKU-0001", "Flour", "Dry Goods", 20, 5, 2),
		mk("SKU-0002", "Tomatoes", "Produce", 3, 5, 4),
		mk("SKU-0003", "Mozzarella", "Dairy", 0, 2, 9),
	}
}

type testEnv struct {
	tenantID uuid.UUID
	orders   *MockOrderRepository
	store    *cache.InMemoryViewStateStore
	svc      *TableService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tenantID := uuid.New()
	orders := new(MockOrderRepository)
	repos := Repositories{
		Orders:    orders,
		Invoices:  &stubRepository[trade.CustomerInvoice]{},
		Returns:   &stubRepository[trade.SalesReturn]{},
		Vouchers:  &stubVoucherRepository{},
		Payments:  &stubRepository[finance.Payment]{},
		Inventory: &stubItemRepository{stubRepository[inventory.Item]{records: testInventory(tenantID)}},
	}

	translator, err := i18n.NewTranslator("en")
	require.NoError(t, err)

	store := cache.NewInMemoryViewStateStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	svc := NewTableService(NewScreens(repos), store, translator, config.TableConfig{
		DefaultPageSize: 5,
		MaxPageSize:     50,
		MaxVisiblePages: 5,
		SessionTTL:      10 * time.Minute,
	}, zap.NewNop())
	svc.now = func() time.Time { return testBase }

	return &testEnv{tenantID: tenantID, orders: orders, store: store, svc: svc}
}

func (e *testEnv) withOrders(n int) *testEnv {
	e.orders.On("FindAllForTenant", mock.Anything, e.tenantID, mock.Anything).Return(testOrders(e.tenantID, n), nil)
	return e
}

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }
