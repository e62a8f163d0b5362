package delete_service

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
)

type ServiceCatalog interface {
	Delete(ctx context.Context, id string) (*catalog.DeleteResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
