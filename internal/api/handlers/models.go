package handlers

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentResponse запись в ответах API
type AppointmentResponse struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Date        string `json:"date"` // "2026-10-19"
	Time        string `json:"time"` // "10:00"
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// ServiceResponse услуга каталога в ответах API
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Active          bool    `json:"active"`
}

// FromAppointment конвертирует доменную запись в HTTP модель
func FromAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		ServiceID:   a.ServiceID,
		ClientName:  a.ClientName,
		ClientEmail: a.ClientEmail,
		Date:        a.DateKey(),
		Time:        a.Time.String(),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

// FromAppointments конвертирует список записей, пустой список не превращается в null
func FromAppointments(list []*domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAppointment(a))
	}
	return out
}

// FromService конвертирует услугу в HTTP модель
func FromService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Description:     s.Description,
		Category:        s.Category,
		Active:          s.Active,
	}
}
