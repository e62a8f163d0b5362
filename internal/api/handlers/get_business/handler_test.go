package get_business

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/business"
	"github.com/m04kA/SMC-AgendaService/internal/service/workinghours"
)

func TestHandler(t *testing.T) {
	calendar, err := workinghours.NewCalendar([]domain.WorkingHours{
		{Weekday: time.Monday, Start: "09:00", End: "18:00", IsActive: true},
	})
	require.NoError(t, err)

	svc := business.NewService(domain.BusinessInfo{
		Name:     "Studio Design & Estratégia",
		Slug:     "studio-design",
		Timezone: "America/Sao_Paulo",
	}, calendar, 30)

	rec := httptest.NewRecorder()
	NewHandler(svc).Handle(rec, httptest.NewRequest(http.MethodGet, "/business", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body BusinessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "studio-design", body.Slug)
	assert.Equal(t, 30, body.SlotStepMinutes)
	require.Len(t, body.WorkingHours, domain.DaysPerWeek)
	assert.Equal(t, WorkingHoursResponse{Day: 1, Start: "09:00", End: "18:00", IsActive: true}, body.WorkingHours[1])
	assert.False(t, body.WorkingHours[0].IsActive)
}
