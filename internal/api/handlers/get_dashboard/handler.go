package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

type Handler struct {
	agenda AgendaService
	logger Logger
}

func NewHandler(agenda AgendaService, logger Logger) *Handler {
	return &Handler{
		agenda: agenda,
		logger: logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.agenda.Dashboard(r.Context())
	if err != nil {
		if errors.Is(err, agenda.ErrUnavailable) {
			h.logger.Warn("GET /dashboard - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)
			return
		}
		h.logger.Error("GET /dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(dashboard))
}
