package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCore_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCore(reg)

	m.AuthAttempts.WithLabelValues("success").Inc()
	m.FavoritesSize.Set(2)
	m.DialogRequests.WithLabelValues("phone_reveal").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.AuthAttempts.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.FavoritesSize))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewCore_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCore(reg)
	assert.Panics(t, func() { NewCore(reg) })
}

func TestHTTPMiddleware_RecordsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTP(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/jobs/:id", func(c echo.Context) error { return c.NoContent(http.StatusTeapot) })
	e.GET("/metrics", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, path := range []string{"/api/jobs/1", "/api/jobs/2", "/metrics"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/jobs/:id", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestsTotal))
}
