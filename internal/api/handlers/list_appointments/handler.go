package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/ledger"
)

const msgInvalidDate = "data inválida, use o formato AAAA-MM-DD"

type Handler struct {
	ledger   AppointmentLedger
	location *time.Location
	logger   Logger
}

func NewHandler(ledger AppointmentLedger, location *time.Location, logger Logger) *Handler {
	return &Handler{
		ledger:   ledger,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/appointments?date=YYYY-MM-DD
// Без date возвращаются записи на сегодня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := domain.DateOnly(time.Now().In(h.location))
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := handlers.ParseDate(raw, h.location)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	list, err := h.ledger.ListForDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			h.logger.Warn("GET /appointments - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: date=%s, error=%v",
			date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments for %s", len(list), date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointments(list))
}
