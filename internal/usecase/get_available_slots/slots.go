package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// generateCandidates генерирует все интервалы [t, t+duration) с шагом step,
// начиная с открытия. Последний кандидат заканчивается не позже закрытия.
// Если услуга длиннее рабочего окна, результат пустой.
func generateCandidates(open, close types.TimeString, durationMinutes, stepMinutes int) []domain.TimeSlot {
	candidates := make([]domain.TimeSlot, 0)
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return candidates
	}

	last := close.Minutes() - durationMinutes
	for start := open.Minutes(); start <= last; start += stepMinutes {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			break
		}
		candidates = append(candidates, domain.NewTimeSlot(startTime, durationMinutes))
	}

	return candidates
}

// excludeBusy убирает кандидатов, пересекающихся с занятыми интервалами.
// Граничащие интервалы (конец одного равен началу другого) пересечением не считаются.
func excludeBusy(candidates, busy []domain.TimeSlot) []domain.TimeSlot {
	if len(busy) == 0 {
		return candidates
	}

	free := make([]domain.TimeSlot, 0, len(candidates))
	for _, candidate := range candidates {
		taken := false
		for _, b := range busy {
			if candidate.Overlaps(b) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, candidate)
		}
	}
	return free
}

// excludeStarted оставляет слоты, начало которых не раньше now.
// Начало слота берется в часовом поясе даты.
func excludeStarted(candidates []domain.TimeSlot, date, now time.Time) []domain.TimeSlot {
	if !domain.IsSameDay(date, now.In(date.Location())) {
		return candidates
	}

	result := make([]domain.TimeSlot, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.Start.OnDate(date).Before(now) {
			result = append(result, candidate)
		}
	}
	return result
}
