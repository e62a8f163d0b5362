package list_upcoming_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type AppointmentLedger interface {
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
