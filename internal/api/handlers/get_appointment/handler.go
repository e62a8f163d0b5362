package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/ledger"
)

const msgNotFound = "agendamento não encontrado"

type Handler struct {
	ledger AppointmentLedger
	logger Logger
}

func NewHandler(ledger AppointmentLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]

	appointment, err := h.ledger.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ledger.ErrUnavailable):
			h.logger.Warn("GET /appointments/{id} - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appointment))
}
