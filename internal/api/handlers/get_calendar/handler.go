package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

const msgInvalidMonth = "ano ou mês inválido"

type Handler struct {
	agenda   AgendaService
	location *time.Location
	logger   Logger
}

func NewHandler(agenda AgendaService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		agenda:   agenda,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar?year=2026&month=10
// Без параметров возвращается текущий месяц.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(h.location)
	year, month := now.Year(), int(now.Month())

	query := r.URL.Query()
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		year = parsed
	}
	if raw := query.Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = parsed
	}

	result, err := h.agenda.Month(r.Context(), year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid month: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, agenda.ErrUnavailable):
			h.logger.Warn("GET /calendar - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("GET /calendar - Failed to build month: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
