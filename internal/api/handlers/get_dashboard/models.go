package get_dashboard

import (
	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Date     string          `json:"date"`
	Summary  string          `json:"summary"`
	Stats    StatsResponse   `json:"stats"`
	Today    []EntryResponse `json:"today"`
	Upcoming []EntryResponse `json:"upcoming"`
}

// StatsResponse показатели панели
type StatsResponse struct {
	UniqueClients     int     `json:"uniqueClients"`
	ScheduledUpcoming int     `json:"scheduledUpcoming"`
	ActiveServices    int     `json:"activeServices"`
	ExpectedRevenue   float64 `json:"expectedRevenue"`
}

// EntryResponse запись с названием и ценой услуги
type EntryResponse struct {
	handlers.AppointmentResponse
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
}

// FromEntries конвертирует записи агенды, используется и календарем
func FromEntries(entries []agenda.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			AppointmentResponse: handlers.FromAppointment(e.Appointment),
			ServiceName:         e.ServiceName,
			Price:               e.Price,
		})
	}
	return out
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(d *agenda.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Date:    d.Date.Format(domain.DateFormat),
		Summary: d.Summary,
		Stats: StatsResponse{
			UniqueClients:     d.Stats.UniqueClients,
			ScheduledUpcoming: d.Stats.ScheduledUpcoming,
			ActiveServices:    d.Stats.ActiveServices,
			ExpectedRevenue:   d.Stats.ExpectedRevenue,
		},
		Today:    FromEntries(d.Today),
		Upcoming: FromEntries(d.Upcoming),
	}
}
