package business

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Service отдает неизменяемые после старта данные бизнеса
type Service struct {
	info            domain.BusinessInfo
	calendar        WorkingCalendar
	slotStepMinutes int
}

// NewService создает сервис. Рабочие часы берутся из календаря,
// а не из info, чтобы выходные дни тоже попадали в ответ.
func NewService(info domain.BusinessInfo, calendar WorkingCalendar, slotStepMinutes int) *Service {
	if slotStepMinutes <= 0 {
		slotStepMinutes = domain.DefaultSlotStepMinutes
	}
	return &Service{
		info:            info,
		calendar:        calendar,
		slotStepMinutes: slotStepMinutes,
	}
}

// Get возвращает данные бизнеса
func (s *Service) Get(_ context.Context) *Info {
	return &Info{
		Name:            s.info.Name,
		Slug:            s.info.Slug,
		About:           s.info.About,
		Timezone:        s.info.Timezone,
		SlotStepMinutes: s.slotStepMinutes,
		WorkingHours:    s.calendar.Entries(),
	}
}
