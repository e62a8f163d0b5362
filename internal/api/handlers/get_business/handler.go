package get_business

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

type Handler struct {
	service BusinessService
}

func NewHandler(service BusinessService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/business
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(h.service.Get(r.Context())))
}
