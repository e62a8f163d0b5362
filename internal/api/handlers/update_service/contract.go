package update_service

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog"
)

type ServiceCatalog interface {
	Update(ctx context.Context, req *catalog.UpdateServiceRequest) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
