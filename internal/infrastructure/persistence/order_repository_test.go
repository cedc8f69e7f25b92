package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/domain/shared"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestOrder(t *testing.T, tenantID uuid.UUID, n int, customer string, channel trade.Channel, placedAt time.Time) *trade.Order {
	t.Helper()
	o, err := trade.NewOrder(tenantID, fmt.Sprintf("ORD-%04d", n), customer, channel, decimal.NewFromInt(int64(10*n)), placedAt)
	require.NoError(t, err)
	return o
}

func seedOrders(t *testing.T, repo *GormOrderRepository, tenantID uuid.UUID) []*trade.Order {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []*trade.Order{
		newTestOrder(t, tenantID, 1, "Alice Martin", trade.ChannelDineIn, base),
		newTestOrder(t, tenantID, 2, "Bob Stone", trade.ChannelDelivery, base.Add(24*time.Hour)),
		newTestOrder(t, tenantID, 3, "alice cooper", trade.ChannelTakeaway, base.Add(48*time.Hour)),
	}
	require.NoError(t, orders[1].TransitionTo(trade.OrderStatusPreparing))
	require.NoError(t, repo.SaveBatch(context.Background(), orders))
	return orders
}

func TestGormOrderRepository_FindAllForTenant(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormOrderRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()
	seedOrders(t, repo, tenantID)

	other := newTestOrder(t, uuid.New(), 9, "Alice Other Tenant", trade.ChannelDineIn, time.Now().UTC())
	require.NoError(t, repo.Save(ctx, other))

	t.Run("scopes to tenant newest first", func(t *testing.T) {
		orders, err := repo.FindAllForTenant(ctx, tenantID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "ORD-0003", orders[0].OrderNumber)
		assert.Equal(t, "ORD-0001", orders[2].OrderNumber)
	})

	t.Run("searches case-insensitively", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "ALICE"
		orders, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["status"] = string(trade.OrderStatusPreparing)
		orders, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "Bob Stone", orders[0].CustomerName)
		assert.True(t, decimal.NewFromInt(20).Equal(orders[0].Total))
	})

	t.Run("paginates with validated sort", func(t *testing.T) {
		filter := shared.Filter{Page: 2, PageSize: 2, OrderBy: "order_number", OrderDir: "asc"}
		orders, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "ORD-0003", orders[0].OrderNumber)
	})

	t.Run("ignores unknown sort field", func(t *testing.T) {
		filter := shared.Filter{OrderBy: "1; DROP TABLE orders", OrderDir: "asc"}
		orders, err := repo.FindAllForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "ORD-0001", orders[0].OrderNumber)
	})
}

func TestGormOrderRepository_FindByNumber(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormOrderRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()
	seeded := seedOrders(t, repo, tenantID)

	t.Run("finds existing order", func(t *testing.T) {
		order, err := repo.FindByNumber(ctx, tenantID, "ORD-0002")
		require.NoError(t, err)
		assert.Equal(t, seeded[1].ID, order.ID)
		assert.Equal(t, trade.ChannelDelivery, order.Channel)
		assert.Equal(t, trade.OrderStatusPreparing, order.Status)
	})

	t.Run("returns not found for other tenant", func(t *testing.T) {
		order, err := repo.FindByNumber(ctx, uuid.New(), "ORD-0002")
		assert.Nil(t, order)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormOrderRepository_SaveUpdatesExisting(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormOrderRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()
	orders := seedOrders(t, repo, tenantID)

	require.NoError(t, orders[0].TransitionTo(trade.OrderStatusCancelled))
	require.NoError(t, repo.Save(ctx, orders[0]))

	found, err := repo.FindByNumber(ctx, tenantID, "ORD-0001")
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusCancelled, found.Status)

	count, err := repo.CountForTenant(ctx, tenantID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGormOrderRepository_CountForTenant(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormOrderRepository(db.DB)
	ctx := context.Background()
	tenantID := uuid.New()
	seedOrders(t, repo, tenantID)

	t.Run("counts with date range", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["start_date"] = time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		count, err := repo.CountForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("empty status filter is ignored", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["status"] = ""
		count, err := repo.CountForTenant(ctx, tenantID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

// newMockOrderRepository creates a GormOrderRepository over a mocked postgres connection
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func TestGormOrderRepository_Postgres(t *testing.T) {
	t.Run("finds order by number", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		orderID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "tenant_id", "order_number", "customer_name", "channel", "status", "total"}).
			AddRow(orderID.String(), tenantID.String(), "ORD-0042", "Dana", "TAKEAWAY", "READY", "18.5000")

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE tenant_id = \$1 AND order_number = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, "ORD-0042", 1).
			WillReturnRows(rows)

		order, err := repo.FindByNumber(context.Background(), tenantID, "ORD-0042")

		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, trade.OrderStatusReady, order.Status)
		assert.Equal(t, "18.5", order.Total.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE tenant_id = \$1 AND order_number = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, "ORD-0404", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByNumber(context.Background(), tenantID, "ORD-0404")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counts with lowered search", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE tenant_id = \$1 AND \(?LOWER\(order_number\) LIKE \$2 OR .*`).
			WithArgs(tenantID, "%pizza%", "%pizza%", "%pizza%", "%pizza%", "%pizza%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		filter := shared.DefaultFilter()
		filter.Search = " Pizza "
		count, err := repo.CountForTenant(context.Background(), tenantID, filter)

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
