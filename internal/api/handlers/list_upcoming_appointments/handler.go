package list_upcoming_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/ledger"
)

const msgInvalidLimit = "limite inválido"

type Handler struct {
	ledger       AppointmentLedger
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(ledger AppointmentLedger, location *time.Location, logger Logger) *Handler {
	return &Handler{
		ledger:       ledger,
		location:     location,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/appointments/upcoming?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := domain.DefaultUpcomingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > domain.MaxUpcomingLimit {
			h.logger.Warn("GET /appointments/upcoming - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	from := h.timeProvider.Now().In(h.location)
	list, err := h.ledger.ListUpcoming(r.Context(), from, limit)
	if err != nil {
		if errors.Is(err, ledger.ErrUnavailable) {
			h.logger.Warn("GET /appointments/upcoming - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)
			return
		}
		h.logger.Error("GET /appointments/upcoming - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointments(list))
}
