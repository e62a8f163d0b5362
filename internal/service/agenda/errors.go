package agenda

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("agenda: invalid input")

	// ErrUnavailable журнал или каталог не ответили вовремя
	ErrUnavailable = fmt.Errorf("agenda: %w", domain.ErrTransient)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("agenda: internal error")
)
