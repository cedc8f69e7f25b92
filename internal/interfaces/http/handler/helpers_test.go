package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/application/dashboard"
	"github.com/pos/backoffice/internal/domain/trade"
	"github.com/pos/backoffice/internal/infrastructure/cache"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/pos/backoffice/internal/infrastructure/i18n"
	"github.com/pos/backoffice/internal/infrastructure/persistence"
	"github.com/pos/backoffice/internal/interfaces/http/dto"
	"github.com/pos/backoffice/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var orderBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// apiResponse mirrors dto.Response with the payload left undecoded
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

type testEnv struct {
	tenantID uuid.UUID
	db       *persistence.Database
	service  *dashboard.TableService
	engine   *gin.Engine
}

// newTestEnv serves the table and view handlers over an in-memory sqlite
// database holding twelve orders. Order i was placed i days after orderBase,
// belongs to Bob when i is even and Alice otherwise, totals i*10 and is
// completed when i is divisible by three.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:     persistence.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	tenantID := uuid.New()
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	orders := make([]*trade.Order, 0, 12)
	for i := 1; i <= 12; i++ {
		customer := "Alice Smith"
		if i%2 == 0 {
			customer = "Bob Jones"
		}
		o, err := trade.NewOrder(tenantID, fmt.Sprintf("ORD-%03d", i), customer, trade.ChannelTakeaway,
			decimal.NewFromInt(int64(i*10)), orderBase.AddDate(0, 0, i))
		require.NoError(t, err)
		if i%3 == 0 {
			o.Status = trade.OrderStatusCompleted
		}
		o.SellerName = "Dana"
		orders = append(orders, o)
	}
	require.NoError(t, orderRepo.SaveBatch(context.Background(), orders))

	repos := dashboard.Repositories{
		Orders:    orderRepo,
		Invoices:  persistence.NewGormCustomerInvoiceRepository(db.DB),
		Returns:   persistence.NewGormSalesReturnRepository(db.DB),
		Vouchers:  persistence.NewGormVoucherRepository(db.DB),
		Payments:  persistence.NewGormPaymentRepository(db.DB),
		Inventory: persistence.NewGormInventoryItemRepository(db.DB),
	}

	translator, err := i18n.NewTranslator("en")
	require.NoError(t, err)
	store := cache.NewInMemoryViewStateStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	svc := dashboard.NewTableService(dashboard.NewScreens(repos), store, translator, config.TableConfig{
		DefaultPageSize: 5,
		MaxPageSize:     50,
		MaxVisiblePages: 5,
		SessionTTL:      10 * time.Minute,
	}, zap.NewNop())

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.Tenant())

	tables := NewTableHandler(svc)
	engine.GET("/api/v1/tables", tables.ListScreens)
	engine.GET("/api/v1/tables/:screen", tables.Query)
	engine.POST("/api/v1/tables/:screen/views", tables.CreateView)

	views := NewViewHandler(svc)
	engine.GET("/api/v1/views/:id", views.Get)
	engine.PUT("/api/v1/views/:id/search", views.SetSearch)
	engine.PUT("/api/v1/views/:id/page", views.ChangePage)
	engine.DELETE("/api/v1/views/:id", views.Close)

	return &testEnv{tenantID: tenantID, db: db, service: svc, engine: engine}
}

// do sends a request as the env tenant unless the header is overridden
func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.TenantHeaderKey, e.tenantID.String())
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decodeData[T any](t *testing.T, resp apiResponse) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	return out
}

// cell returns column col of row row as a string
func cell(t *testing.T, page dashboard.TablePage, row, col int) string {
	t.Helper()
	require.Greater(t, len(page.Projection.Rows), row)
	return fmt.Sprint(page.Projection.Rows[row][col])
}

func orderNumbers(page dashboard.TablePage) []string {
	out := make([]string, len(page.Projection.Rows))
	for i, r := range page.Projection.Rows {
		out[i] = fmt.Sprint(r[1])
	}
	return out
}
