package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidService     = "dados do serviço inválidos: informe nome, duração maior que zero e preço não negativo"
	msgServiceNotFound    = "serviço não encontrado"
	msgDurationLocked     = "não é possível aumentar a duração de um serviço com agendamentos marcados"
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

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["serviceId"]

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.catalog.Update(r.Context(), req.ToServiceRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid service: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrDurationLocked):
			h.logger.Warn("PUT /services/{id} - Duration locked by scheduled appointments: id=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgDurationLocked)

		case errors.Is(err, catalog.ErrUnavailable):
			h.logger.Warn("PUT /services/{id} - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromService(service))
}
