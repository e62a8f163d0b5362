package domain

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// TimeSlot is a half-open interval [Start, End) within one day
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeSlot builds [start, start+duration). The end is clamped to 24:00.
func NewTimeSlot(start types.TimeString, durationMinutes int) TimeSlot {
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		end = "24:00"
	}
	return TimeSlot{Start: start, End: end}
}

// Overlaps reports whether two half-open intervals share at least one instant:
// a.Start < b.End && b.Start < a.End. Touching intervals do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Minutes() < other.End.Minutes() && other.Start.Minutes() < s.End.Minutes()
}

// Within returns true if the slot lies fully inside [open, close)
func (s TimeSlot) Within(open, close types.TimeString) bool {
	return s.Start.Minutes() >= open.Minutes() && s.End.Minutes() <= close.Minutes()
}

// DurationMinutes returns the slot length
func (s TimeSlot) DurationMinutes() int {
	return s.End.Minutes() - s.Start.Minutes()
}
