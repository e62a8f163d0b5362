package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("catalog: service %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректном описании услуги
	ErrInvalidInput = errors.New("catalog: invalid service data")

	// ErrDurationLocked услугу нельзя удлинить, пока на нее есть запланированные записи
	ErrDurationLocked = fmt.Errorf("catalog: service duration %w", domain.ErrConflict)

	// ErrUnavailable хранилище не ответило вовремя
	ErrUnavailable = fmt.Errorf("catalog: storage %w", domain.ErrTransient)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
