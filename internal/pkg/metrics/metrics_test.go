package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareAndHandler(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/v1/actors/:id", func(c echo.Context) error { return c.NoContent(http.StatusNotFound) })
	e.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/actors/:id", "404"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/actors/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/actors/:id", "404"))
	assert.Equal(t, before+1, after)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pathclear_http_requests_total")
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(AlertEvaluations.WithLabelValues(OutcomeRateLimited))
	AlertEvaluations.WithLabelValues(OutcomeRateLimited).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AlertEvaluations.WithLabelValues(OutcomeRateLimited)))
}
