package ledger

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("ledger: appointment %w", domain.ErrNotFound)

	// ErrUnknownService возвращается, когда услуга новой записи не найдена в каталоге
	ErrUnknownService = fmt.Errorf("ledger: service %w", domain.ErrNotFound)

	// ErrInvalidAppointment запись не прошла проверку формы
	ErrInvalidAppointment = errors.New("ledger: invalid appointment")

	// ErrSlotConflict интервал пересекается с запланированной записью
	ErrSlotConflict = fmt.Errorf("ledger: interval %w", domain.ErrConflict)

	// ErrAlreadyInState статус уже установлен (повторная отмена)
	ErrAlreadyInState = fmt.Errorf("ledger: appointment %w", domain.ErrIdempotentState)

	// ErrTransitionNotAllowed переход статуса запрещен
	ErrTransitionNotAllowed = fmt.Errorf("ledger: %w", domain.ErrInvalidTransition)

	// ErrUnavailable хранилище не ответило вовремя
	ErrUnavailable = fmt.Errorf("ledger: storage %w", domain.ErrTransient)

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("ledger: internal error")
)
