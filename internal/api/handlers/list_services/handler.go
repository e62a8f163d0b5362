package list_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
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

// Handle GET /api/v1/services
// ?active=true оставляет только услуги, доступные для записи (публичная страница).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		services []*domain.Service
		err      error
	)
	if r.URL.Query().Get("active") == "true" {
		services, err = h.catalog.ListActive(r.Context())
	} else {
		services, err = h.catalog.List(r.Context())
	}
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			h.logger.Warn("GET /services - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w)
			return
		}
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.ServiceResponse, 0, len(services))
	for _, s := range services {
		response = append(response, handlers.FromService(s))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
