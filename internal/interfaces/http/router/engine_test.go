package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backoffice/internal/application/dashboard"
	"github.com/pos/backoffice/internal/infrastructure/cache"
	"github.com/pos/backoffice/internal/infrastructure/config"
	"github.com/pos/backoffice/internal/infrastructure/i18n"
	"github.com/pos/backoffice/internal/infrastructure/metrics"
	"github.com/pos/backoffice/internal/infrastructure/persistence"
	"github.com/pos/backoffice/internal/infrastructure/seed"
	"github.com/pos/backoffice/internal/interfaces/http/dto"
	"github.com/pos/backoffice/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type engineEnv struct {
	tenantID uuid.UUID
	prom     *metrics.Registry
	spans    *tracetest.SpanRecorder
	deps     Dependencies
}

func newEngineEnv(t *testing.T) *engineEnv {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:     persistence.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	orders := persistence.NewGormOrderRepository(db.DB)
	invoices := persistence.NewGormCustomerInvoiceRepository(db.DB)
	returns := persistence.NewGormSalesReturnRepository(db.DB)
	vouchers := persistence.NewGormVoucherRepository(db.DB)
	payments := persistence.NewGormPaymentRepository(db.DB)
	items := persistence.NewGormInventoryItemRepository(db.DB)

	tenantID := uuid.New()
	seeder := seed.NewSeeder(seed.Repositories{
		Orders: orders, Invoices: invoices, Returns: returns,
		Vouchers: vouchers, Payments: payments, Inventory: items,
	}, zap.NewNop())
	_, err = seeder.Run(context.Background(), tenantID, 7, seed.Counts{Orders: 25, Invoices: 5, Inventory: 5})
	require.NoError(t, err)

	translator, err := i18n.NewTranslator("en")
	require.NoError(t, err)
	store := cache.NewInMemoryViewStateStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	prom := metrics.NewRegistry(metrics.Config{})
	svc := dashboard.NewTableService(dashboard.NewScreens(dashboard.Repositories{
		Orders: orders, Invoices: invoices, Returns: returns,
		Vouchers: vouchers, Payments: payments, Inventory: items,
	}), store, translator, config.TableConfig{DefaultPageSize: 10, MaxPageSize: 50}, zap.NewNop())
	svc.SetPrometheus(prom)

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	cfg := &config.Config{
		App: config.AppConfig{Name: "pos-backoffice", Env: "test"},
		HTTP: config.HTTPConfig{
			MaxBodySize:    1 << 20,
			MetricsEnabled: true,
		},
		Telemetry: config.TelemetryConfig{ServiceName: "pos-backoffice"},
	}

	return &engineEnv{
		tenantID: tenantID,
		prom:     prom,
		spans:    spans,
		deps: Dependencies{
			Config:         cfg,
			TableService:   svc,
			Database:       db,
			Prometheus:     prom,
			TracerProvider: tp,
		},
	}
}

func (e *engineEnv) get(t *testing.T, path string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.TenantHeaderKey, e.tenantID.String())
	w := httptest.NewRecorder()
	NewEngine(e.deps).ServeHTTP(w, req)

	var resp dto.Response
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestNewEngine_Health(t *testing.T) {
	env := newEngineEnv(t)

	w, resp := env.get(t, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestNewEngine_TableQuery(t *testing.T) {
	env := newEngineEnv(t)

	w, resp := env.get(t, "/api/v1/tables/orders?page_size=10")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(25), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	var server sdktrace.ReadOnlySpan
	for _, s := range env.spans.Ended() {
		if s.SpanKind() == trace.SpanKindServer {
			server = s
		}
	}
	require.NotNil(t, server, "request should produce a server span")
	assert.Contains(t, server.Attributes(), attribute.String("tenant_id", env.tenantID.String()))
}

func TestNewEngine_Metrics(t *testing.T) {
	env := newEngineEnv(t)
	engine := NewEngine(env.deps)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tables/invoices", nil)
	req.Header.Set(middleware.TenantHeaderKey, env.tenantID.String())
	engine.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "backoffice_http_requests_total")
	assert.Contains(t, w.Body.String(), `backoffice_table_queries_total{mode="query",screen="invoices"} 1`)
}

func TestNewEngine_MetricsDisabled(t *testing.T) {
	env := newEngineEnv(t)
	env.deps.Config.HTTP.MetricsEnabled = false

	w, _ := env.get(t, "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewEngine_WithoutTableService(t *testing.T) {
	env := newEngineEnv(t)
	env.deps.TableService = nil

	w, _ := env.get(t, "/api/v1/tables")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp := env.get(t, "/api/v1/system/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}
