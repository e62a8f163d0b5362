package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (пустая дата, неверный формат времени)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnavailable каталог или журнал не ответили вовремя
	ErrUnavailable = fmt.Errorf("create booking: %w", domain.ErrTransient)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
