package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Upstream(t *testing.T) {
	m := NewMetrics()

	m.ObserveUpstreamAttempt("timeout", 10*time.Millisecond)
	m.ObserveUpstreamAttempt("timeout", 10*time.Millisecond)
	m.ObserveUpstreamAttempt("response", time.Millisecond)
	m.IncUpstreamCall("success")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamAttempts.WithLabelValues("timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamAttempts.WithLabelValues("response")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues("success")))
}

func TestMetrics_HTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.ObserveHTTPRequest(http.MethodGet, "/api/users", http.StatusOK, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/users", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpstreamAttempt("timeout", time.Second)
		m.IncUpstreamCall("timeout")
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Second)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.IncUpstreamCall("connection_failure")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `user_gateway_upstream_calls_total{result="connection_failure"} 1`)
}
