package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или архивирована
	ErrServiceNotFound = fmt.Errorf("service %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnavailable хранилище или каталог не ответили вовремя
	ErrUnavailable = fmt.Errorf("slots: %w", domain.ErrTransient)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
