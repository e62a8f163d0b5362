package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createBooking "github.com/m04kA/SMC-AgendaService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"serviceId":"1","date":"2026-10-19","time":"10:00","clientName":"Ana","clientEmail":"ana@email.com"}`

func TestHandler_Created(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	uc := &stubUseCase{resp: &createBooking.Response{
		Appointment: &domain.Appointment{
			ID:          "a-1",
			ServiceID:   "1",
			ClientName:  "Ana",
			ClientEmail: "ana@email.com",
			Date:        time.Date(2026, 10, 19, 0, 0, 0, 0, loc),
			Time:        "10:00",
			Status:      domain.StatusScheduled,
		},
		Service: &domain.Service{ID: "1", Name: "Consultoria de Negócios", DurationMinutes: 60, Price: 250},
	}}
	h := NewHandler(uc, loc, logger.NewNop())

	rec := post(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "a-1", body.ID)
	assert.Equal(t, "2026-10-19", body.Date)
	assert.Equal(t, "scheduled", body.Status)
	assert.Equal(t, "Consultoria de Negócios", body.ServiceName)
	assert.Equal(t, 60, body.DurationMinutes)

	require.NotNil(t, uc.got)
	assert.Equal(t, loc, uc.got.Date.Location())
	assert.Equal(t, "10:00", uc.got.Time.String())
}

func TestHandler_Rejected(t *testing.T) {
	uc := &stubUseCase{err: domain.Reject(domain.ReasonSlotTaken, "10:00 overlaps")}
	h := NewHandler(uc, time.UTC, logger.NewNop())

	rec := post(h, validBody)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handlers.RejectionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "SLOT_TAKEN", body.Reason)
	assert.Equal(t, domain.ReasonSlotTaken.Message(), body.Message)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed json", body: `{"serviceId":`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"serviceId":"1","date":"19/10/2026","time":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: validBody, err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unavailable", body: validBody, err: fmt.Errorf("%w: timeout", createBooking.ErrUnavailable), wantStatus: http.StatusServiceUnavailable},
		{name: "internal", body: validBody, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, time.UTC, logger.NewNop())
			rec := post(h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
