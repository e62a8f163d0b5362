package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestMetrics_Counters(t *testing.T) {
	m := New("agenda-test")

	m.BookingAccepted()
	m.BookingAccepted()
	m.BookingRejected("SLOT_TAKEN")
	m.SummarizerFallback("summarize")
	m.ObserveHTTP(http.MethodGet, "/api/v1/services", http.StatusOK, 15*time.Millisecond)
	m.ObserveDBQuery("query", 3*time.Millisecond, nil)
	m.ObserveDBQuery("exec", time.Millisecond, errors.New("boom"))

	body := scrape(t, m)

	assert.Contains(t, body, `bookings_accepted_total{service="agenda-test"} 2`)
	assert.Contains(t, body, `bookings_rejected_total{reason="SLOT_TAKEN",service="agenda-test"} 1`)
	assert.Contains(t, body, `summarizer_fallbacks_total{operation="summarize",service="agenda-test"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/v1/services",service="agenda-test",status="200"} 1`)
	assert.Contains(t, body, `db_query_duration_seconds_count{operation="query",service="agenda-test",status="ok"} 1`)
	assert.Contains(t, body, `db_query_duration_seconds_count{operation="exec",service="agenda-test",status="error"} 1`)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingAccepted()
		m.BookingRejected("IN_PAST")
		m.SummarizerFallback("describe")
		m.ObserveHTTP(http.MethodPost, "/", http.StatusCreated, time.Second)
		m.ObserveDBQuery("exec", time.Second, nil)
	})
}
