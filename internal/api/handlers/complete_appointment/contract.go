package complete_appointment

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type AppointmentLedger interface {
	Complete(ctx context.Context, id string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
