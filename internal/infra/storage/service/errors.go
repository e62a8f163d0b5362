package service

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("service.repository: service %w", domain.ErrNotFound)

	// ErrDuplicateID возвращается при создании услуги с существующим ID
	ErrDuplicateID = errors.New("service.repository: duplicate id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
