package workinghours

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Calendar хранит рабочие часы по дням недели и отвечает на вопрос
// "открыт ли бизнес в момент T даты D". Неизменяем после создания.
type Calendar struct {
	days [domain.DaysPerWeek]domain.WorkingHours
}

// NewCalendar валидирует конфигурацию.
// Дубликат дня недели или start >= end приводят к domain.ErrConfig.
// Дни, отсутствующие в конфигурации, считаются выходными.
func NewCalendar(entries []domain.WorkingHours) (*Calendar, error) {
	c := &Calendar{}
	seen := make(map[time.Weekday]bool, len(entries))

	for i := range c.days {
		c.days[i] = domain.WorkingHours{Weekday: time.Weekday(i)}
	}

	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		if seen[entry.Weekday] {
			return nil, fmt.Errorf("%w: duplicate working hours for %s", domain.ErrConfig, entry.Weekday)
		}
		seen[entry.Weekday] = true
		c.days[entry.Weekday] = entry
	}

	return c, nil
}

// IsOpenAt true, если день активен и start <= t < end
func (c *Calendar) IsOpenAt(date time.Time, t types.TimeString) bool {
	start, end, ok := c.OpenInterval(date)
	if !ok || t.Validate() != nil {
		return false
	}
	return !t.IsBefore(start) && t.IsBefore(end)
}

// OpenInterval возвращает рабочее окно на дату, ok=false для выходного
func (c *Calendar) OpenInterval(date time.Time) (start, end types.TimeString, ok bool) {
	day := c.days[date.Weekday()]
	if !day.IsActive {
		return "", "", false
	}
	return day.Start, day.End, true
}

// Contains true, если интервал [start, start+duration) целиком внутри рабочего окна
func (c *Calendar) Contains(date time.Time, start types.TimeString, durationMinutes int) bool {
	open, close, ok := c.OpenInterval(date)
	if !ok || start.Validate() != nil || durationMinutes <= 0 {
		return false
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	return domain.TimeSlot{Start: start, End: end}.Within(open, close)
}

// Entries возвращает все семь дней, начиная с воскресенья
func (c *Calendar) Entries() []domain.WorkingHours {
	out := make([]domain.WorkingHours, len(c.days))
	copy(out, c.days[:])
	return out
}
