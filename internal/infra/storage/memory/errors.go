package memory

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("memory.appointments: %w", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("memory.services: %w", domain.ErrNotFound)

	// ErrDuplicateID возвращается при вставке записи с существующим ID
	ErrDuplicateID = errors.New("memory: duplicate id")
)
