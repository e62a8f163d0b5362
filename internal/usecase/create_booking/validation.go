package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest проверяет форму запроса. Содержательные причины отказа
// (прошлое, рабочие часы, занятость) проверяются в Validate.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return domain.Reject(domain.ReasonUnknownService, "serviceID is required")
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// clientInfo данные клиента в том виде, в каком они попадут в запись.
// Лимиты совпадают с колонками client_name и client_email.
type clientInfo struct {
	Name  string `validate:"required,max=120"`
	Email string `validate:"required,email,max=254"`
}

// validateClient проверяет имя и email клиента
func validateClient(name, email string) error {
	info := clientInfo{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if err := domain.ValidateStruct(&info); err != nil {
		return domain.Reject(domain.ReasonInvalidClientInfo, "invalid client info: %v", err)
	}
	return nil
}
