package agenda

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/summarizer"
)

// AppointmentLedger чтение журнала записей
type AppointmentLedger interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Appointment, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// ServiceCatalog чтение каталога услуг
type ServiceCatalog interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// Summarizer генерация текста с запасным вариантом
type Summarizer interface {
	SummarizeOrFallback(ctx context.Context, items []summarizer.AgendaItem) string
	DescribeOrFallback(ctx context.Context, serviceName string) string
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
