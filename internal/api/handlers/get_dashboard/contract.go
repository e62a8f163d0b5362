package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

type AgendaService interface {
	Dashboard(ctx context.Context) (*agenda.Dashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
