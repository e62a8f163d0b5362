package business

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// WorkingCalendar интерфейс календаря рабочих часов
type WorkingCalendar interface {
	Entries() []domain.WorkingHours
}

