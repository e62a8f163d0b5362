package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-AgendaService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   string `json:"serviceId"`
	Date        string `json:"date"` // "2026-10-19"
	Time        string `json:"time"` // "10:00"
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	handlers.AppointmentResponse
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат времени проверяет use case.
func (r *CreateBookingRequest) ToUseCaseRequest(location *time.Location) (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date, location)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:   r.ServiceID,
		Date:        date,
		Time:        types.TimeString(r.Time),
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		AppointmentResponse: handlers.FromAppointment(resp.Appointment),
		ServiceName:         resp.Service.Name,
		ServicePrice:        resp.Service.Price,
		DurationMinutes:     resp.Service.DurationMinutes,
	}
}
