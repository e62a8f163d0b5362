package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string    // ID услуги
	Date      time.Time // Дата для получения слотов (без времени, в часовом поясе бизнеса)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time         // Дата, на которую запрашивались слоты
	Service *domain.Service   // Услуга, для которой считались слоты
	Slots   []domain.TimeSlot // Свободные интервалы по возрастанию начала
}
