package complete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/ledger"
)

const (
	msgNotFound   = "agendamento não encontrado"
	msgNotAllowed = "o agendamento não pode ser concluído"
)

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

// Handle PATCH /api/v1/appointments/{appointmentId}/complete
// Повторный запрос для записи в том же статусе возвращает 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]

	appointment, err := h.ledger.Complete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAlreadyInState):
			h.logger.Info("PATCH /appointments/{id}/complete - Already in state: id=%s", id)
			handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appointment))

		case errors.Is(err, ledger.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/complete - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ledger.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /appointments/{id}/complete - Transition not allowed: id=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgNotAllowed)

		case errors.Is(err, ledger.ErrUnavailable):
			h.logger.Warn("PATCH /appointments/{id}/complete - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("PATCH /appointments/{id}/complete - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/complete - Appointment updated: id=%s, status=%s", id, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appointment))
}
