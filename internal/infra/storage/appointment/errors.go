package appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("appointment.repository: appointment %w", domain.ErrNotFound)

	// ErrDuplicateID возвращается при вставке записи с существующим ID
	ErrDuplicateID = errors.New("appointment.repository: duplicate id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
