package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ServiceCatalog источник услуг
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// WorkingCalendar рабочие часы по дням недели
type WorkingCalendar interface {
	OpenInterval(date time.Time) (start, end types.TimeString, ok bool)
}

// AppointmentLedger источник занятых интервалов
type AppointmentLedger interface {
	BusyIntervals(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
