package get_business

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/business"
)

type BusinessService interface {
	Get(ctx context.Context) *business.Info
}
