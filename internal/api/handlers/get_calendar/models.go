package get_calendar

import (
	"github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_dashboard"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

// MonthResponse HTTP response model
type MonthResponse struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	Name          string        `json:"name"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []DayResponse `json:"days"`
}

// DayResponse день месяца с записями
type DayResponse struct {
	Day          int                           `json:"day"`
	Date         string                        `json:"date"`
	Appointments []get_dashboard.EntryResponse `json:"appointments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(m *agenda.Month) *MonthResponse {
	days := make([]DayResponse, len(m.Days))
	for i, d := range m.Days {
		days[i] = DayResponse{
			Day:          d.Day,
			Date:         d.Date.Format(domain.DateFormat),
			Appointments: get_dashboard.FromEntries(d.Appointments),
		}
	}

	return &MonthResponse{
		Year:          m.Year,
		Month:         int(m.Month),
		Name:          m.Name,
		LeadingBlanks: m.LeadingBlanks,
		Days:          days,
	}
}
