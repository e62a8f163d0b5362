package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// WorkingHours is the configured window for one weekday.
// Inactive entries are kept so the hours survive re-activation.
type WorkingHours struct {
	Weekday  time.Weekday // 0 = Sunday .. 6 = Saturday
	Start    types.TimeString
	End      types.TimeString
	IsActive bool
}

// Validate checks weekday range and start < end
func (w WorkingHours) Validate() error {
	if w.Weekday < time.Sunday || w.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d is out of range 0..6", ErrConfig, w.Weekday)
	}
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("%w: %s start: %v", ErrConfig, w.Weekday, err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("%w: %s end: %v", ErrConfig, w.Weekday, err)
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("%w: %s start %s must be before end %s", ErrConfig, w.Weekday, w.Start, w.End)
	}
	return nil
}

// BusinessInfo describes the single tenant shown on the public booking page
type BusinessInfo struct {
	Name         string
	Slug         string
	About        string
	Timezone     string
	WorkingHours []WorkingHours
}
