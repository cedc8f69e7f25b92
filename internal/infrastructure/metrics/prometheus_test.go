package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func findFamily(t *testing.T, r *Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := r.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func TestNewRegistry_Defaults(t *testing.T) {
	r := NewRegistry(Config{})

	assert.Equal(t, "backoffice", r.config.Namespace)
	assert.Equal(t, prometheus.DefBuckets, r.config.HistogramBuckets)
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := NewRegistry(Config{})

	engine := gin.New()
	engine.Use(r.Middleware())
	engine.GET("/api/v1/views/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/views/"+id, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	family := findFamily(t, r, "backoffice_http_requests_total")
	require.NotNil(t, family)

	counts := map[string]float64{}
	for _, m := range family.GetMetric() {
		counts[labelValue(m, "route")+" "+labelValue(m, "status")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, float64(2), counts["/api/v1/views/:id 204"])
	assert.Equal(t, float64(1), counts["unmatched 404"])

	inFlight := findFamily(t, r, "backoffice_http_requests_in_flight")
	require.NotNil(t, inFlight)
	assert.Equal(t, float64(0), inFlight.GetMetric()[0].GetGauge().GetValue())
}

func TestRecordTableQuery(t *testing.T) {
	r := NewRegistry(Config{Namespace: "test"})

	r.RecordTableQuery("orders", "query")
	r.RecordTableQuery("orders", "query")
	r.RecordTableQuery("vouchers", "session")

	family := findFamily(t, r, "test_table_queries_total")
	require.NotNil(t, family)
	assert.Len(t, family.GetMetric(), 2)
}

func TestSessionGauge(t *testing.T) {
	r := NewRegistry(Config{})

	r.SessionOpened()
	r.SessionOpened()
	r.SessionClosed()

	family := findFamily(t, r, "backoffice_table_view_sessions_open")
	require.NotNil(t, family)
	assert.Equal(t, float64(1), family.GetMetric()[0].GetGauge().GetValue())
}

func TestNilRegistry_IsSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.RecordTableQuery("orders", "query")
		r.SessionOpened()
		r.SessionClosed()
	})
}

func TestGinHandler_ServesScrape(t *testing.T) {
	r := NewRegistry(Config{IncludeRuntime: true})
	r.RecordTableQuery("orders", "query")

	engine := gin.New()
	engine.GET("/metrics", r.GinHandler())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, `backoffice_table_queries_total{mode="query",screen="orders"} 1`))
	assert.Contains(t, text, "go_goroutines")
}
