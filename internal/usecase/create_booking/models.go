package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID   string           // ID услуги
	Date        time.Time        // Дата записи (в часовом поясе бизнеса)
	Time        types.TimeString // Время начала (HH:MM)
	ClientName  string           // Имя клиента
	ClientEmail string           // Email клиента
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
	Service     *domain.Service
}
