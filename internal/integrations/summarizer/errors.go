package summarizer

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrDisabled возвращается, когда API-ключ не настроен
	ErrDisabled = errors.New("summarizer client: disabled, no api key configured")

	// ErrInvalidInput возвращается при пустом запросе
	ErrInvalidInput = errors.New("summarizer client: invalid input")

	// ErrUnavailable сервис генерации не ответил вовремя или вернул 429/5xx
	ErrUnavailable = fmt.Errorf("summarizer client: %w", domain.ErrTransient)

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("summarizer client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("summarizer client: internal error")
)
