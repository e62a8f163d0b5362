package get_available_slots

import (
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	ServiceID       string          `json:"serviceId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot свободный интервал [start, end)
type AvailableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.String(),
			End:   slot.End.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.Service.ID,
		DurationMinutes: resp.Service.DurationMinutes,
		Slots:           slots,
	}
}
