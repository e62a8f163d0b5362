package create_booking

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
	Contains(date time.Time, start types.TimeString, durationMinutes int) bool
}

// AppointmentLedger журнал записей, окончательно решает вопрос о пересечениях
type AppointmentLedger interface {
	BusyIntervals(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
	Add(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// Metrics счетчики результатов бронирования
type Metrics interface {
	BookingAccepted()
	BookingRejected(reason string)
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
