package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createBooking "github.com/m04kA/SMC-AgendaService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "data inválida, use o formato AAAA-MM-DD"
	msgInvalidTime        = "horário inválido, use o formato HH:MM"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if rej, ok := domain.AsRejection(err); ok {
			h.logger.Warn("POST /appointments - Rejected: service_id=%s, reason=%s", req.ServiceID, rej.Reason)
			handlers.RespondRejection(w, rej)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrUnavailable):
			h.logger.Warn("POST /appointments - Dependency unavailable: %v", err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s, service_id=%s",
		result.Appointment.ID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
