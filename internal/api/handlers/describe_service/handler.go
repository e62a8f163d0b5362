package describe_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNameRequired       = "informe o nome do serviço"
)

// DescribeServiceRequest HTTP request model
type DescribeServiceRequest struct {
	Name string `json:"name"`
}

// DescribeServiceResponse HTTP response model
type DescribeServiceResponse struct {
	Description string `json:"description"`
}

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

// Handle POST /api/v1/services/describe
// Сбой генерации не является ошибкой: возвращается запасной текст.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DescribeServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/describe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	text, err := h.agenda.Describe(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, agenda.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgNameRequired)
			return
		}
		h.logger.Error("POST /services/describe - Failed to describe service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DescribeServiceResponse{Description: text})
}
