package list_upcoming_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/ledger"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubLedger struct {
	from  time.Time
	limit int
	err   error
}

func (s *stubLedger) ListUpcoming(_ context.Context, from time.Time, limit int) ([]*domain.Appointment, error) {
	s.from = from
	s.limit = limit
	return nil, s.err
}

func get(l AppointmentLedger, target string, now time.Time) *httptest.ResponseRecorder {
	h := NewHandler(l, time.UTC, logger.NewNop())
	h.timeProvider = fixedTime{now: now}

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Limit(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)

	l := &stubLedger{}
	rec := get(l, "/appointments/upcoming", now)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultUpcomingLimit, l.limit)
	assert.True(t, now.Equal(l.from))
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = get(l, "/appointments/upcoming?limit=3", now)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, l.limit)

	for _, raw := range []string{"0", "-1", "abc", "1000"} {
		rec = get(l, "/appointments/upcoming?limit="+raw, now)
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
	}
}

func TestHandler_Unavailable(t *testing.T) {
	rec := get(&stubLedger{err: ledger.ErrUnavailable}, "/appointments/upcoming", time.Now())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
