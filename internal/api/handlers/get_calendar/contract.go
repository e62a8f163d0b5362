package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

type AgendaService interface {
	Month(ctx context.Context, year int, month time.Month) (*agenda.Month, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
