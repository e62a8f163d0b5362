package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
)

const msgServiceNotFound = "serviço não encontrado"

// DeleteServiceResponse archived=true: услуга скрыта, потому что на нее есть записи
type DeleteServiceResponse struct {
	ID       string `json:"id"`
	Archived bool   `json:"archived"`
}

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

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["serviceId"]

	result, err := h.catalog.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrUnavailable):
			h.logger.Warn("DELETE /services/{id} - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service removed: id=%s, archived=%t", id, result.Archived)
	handlers.RespondJSON(w, http.StatusOK, DeleteServiceResponse{ID: id, Archived: result.Archived})
}
