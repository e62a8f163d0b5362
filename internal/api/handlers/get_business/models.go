package get_business

import "github.com/m04kA/SMC-AgendaService/internal/service/business"

// BusinessResponse HTTP response model
type BusinessResponse struct {
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	About           string                 `json:"about"`
	Timezone        string                 `json:"timezone"`
	SlotStepMinutes int                    `json:"slotStepMinutes"`
	WorkingHours    []WorkingHoursResponse `json:"workingHours"`
}

// WorkingHoursResponse рабочее окно дня недели (0 = воскресенье)
type WorkingHoursResponse struct {
	Day      int    `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	IsActive bool   `json:"isActive"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(info *business.Info) *BusinessResponse {
	hours := make([]WorkingHoursResponse, len(info.WorkingHours))
	for i, wh := range info.WorkingHours {
		hours[i] = WorkingHoursResponse{
			Day:      int(wh.Weekday),
			Start:    wh.Start.String(),
			End:      wh.End.String(),
			IsActive: wh.IsActive,
		}
	}

	return &BusinessResponse{
		Name:            info.Name,
		Slug:            info.Slug,
		About:           info.About,
		Timezone:        info.Timezone,
		SlotStepMinutes: info.SlotStepMinutes,
		WorkingHours:    hours,
	}
}
