package describe_service

import "context"

type AgendaService interface {
	Describe(ctx context.Context, serviceName string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
