package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/services/{serviceId}/available-slots", NewHandler(uc, time.UTC, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:    date,
		Service: &domain.Service{ID: "2", DurationMinutes: 30},
		Slots: []domain.TimeSlot{
			{Start: "09:00", End: "09:30"},
			{Start: "09:30", End: "10:00"},
		},
	}}

	rec := serve(uc, "/services/2/available-slots?date=2026-10-19")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2026-10-19", body.Date)
	assert.Equal(t, "2", body.ServiceID)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, AvailableSlot{Start: "09:30", End: "10:00"}, body.Slots[1])

	assert.Equal(t, "2", uc.got.ServiceID)
	assert.True(t, date.Equal(uc.got.Date))
}

func TestHandler_EmptySlotsIsArray(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:    time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		Service: &domain.Service{ID: "1", DurationMinutes: 60},
		Slots:   []domain.TimeSlot{},
	}}

	rec := serve(uc, "/services/1/available-slots?date=2026-10-18")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "missing date", target: "/services/1/available-slots", wantStatus: http.StatusBadRequest},
		{name: "bad date", target: "/services/1/available-slots?date=2026-13-01", wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/services/9/available-slots?date=2026-10-19", err: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "unavailable", target: "/services/1/available-slots?date=2026-10-19", err: getAvailableSlots.ErrUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", target: "/services/1/available-slots?date=2026-10-19", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
