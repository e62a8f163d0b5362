package ledger

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentRepository интерфейс хранилища записей
type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, updatedAt time.Time) error
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	ListScheduledFrom(ctx context.Context, from time.Time) ([]*domain.Appointment, error)
	CountScheduledByService(ctx context.Context, serviceID string) (int, error)
}

// ServiceResolver источник длительности услуг (каталог)
type ServiceResolver interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
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
