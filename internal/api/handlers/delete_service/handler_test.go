package delete_service

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
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
	"github.com/m04kA/SMC-AgendaService/internal/service/ledger"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

func serve(c *catalog.Service, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/services/{serviceId}", NewHandler(c, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/services/"+id, nil))
	return rec
}

func TestHandler(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()

	appointments := memory.NewAppointmentStore()
	services := catalog.NewService(memory.NewServiceStore(), appointments, time.Second, log)
	require.NoError(t, services.Seed(ctx, []catalog.CreateServiceRequest{
		{ID: "1", Name: "Consultoria de Negócios", DurationMinutes: 60, Price: 250},
		{ID: "2", Name: "Mentoria Express", DurationMinutes: 30, Price: 150},
	}))

	_, err := ledger.New(appointments, services, time.Second, log).Add(ctx, &domain.Appointment{
		ServiceID:   "1",
		ClientName:  "Ana",
		ClientEmail: "ana@email.com",
		Date:        time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
	})
	require.NoError(t, err)

	t.Run("archived when booked", func(t *testing.T) {
		rec := serve(services, "1")
		require.Equal(t, http.StatusOK, rec.Code)

		var body DeleteServiceResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, DeleteServiceResponse{ID: "1", Archived: true}, body)

		service, err := services.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.False(t, service.IsBookable())
	})

	t.Run("removed when free", func(t *testing.T) {
		rec := serve(services, "2")
		require.Equal(t, http.StatusOK, rec.Code)

		var body DeleteServiceResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.Archived)

		_, err := services.GetByID(ctx, "2")
		assert.ErrorIs(t, err, catalog.ErrServiceNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		rec := serve(services, "404")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
