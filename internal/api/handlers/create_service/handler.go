package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidService     = "dados do serviço inválidos: informe nome, duração maior que zero e preço não negativo"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalog.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid service: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrUnavailable):
			h.logger.Warn("POST /services - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: id=%s", service.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromService(service))
}
