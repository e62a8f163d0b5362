package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// ParseAppointmentStatus validates a raw status value
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// Appointment represents a client booking.
// Date, Time and ServiceID are immutable once created; only Status changes.
type Appointment struct {
	ID          string
	ServiceID   string // weak reference, the service may be gone
	ClientName  string
	ClientEmail string
	Date        time.Time // calendar date, time component is ignored
	Time        types.TimeString
	Status      AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the appointment takes part in conflict checks
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsCanceled returns true if the appointment has been canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// DateKey returns the YYYY-MM-DD key of the appointment date
func (a *Appointment) DateKey() string {
	return a.Date.Format(DateFormat)
}

// Interval returns [time, time+duration) of the appointment.
// Duration past midnight is clamped to the end of day.
func (a *Appointment) Interval(durationMinutes int) TimeSlot {
	return NewTimeSlot(a.Time, durationMinutes)
}

// StartsAt returns the start instant in the location of Date
func (a *Appointment) StartsAt() time.Time {
	return a.Time.OnDate(a.Date)
}

// Clone returns a copy safe to hand out of a store
func (a *Appointment) Clone() *Appointment {
	c := *a
	return &c
}

// Validate checks the record shape at the ledger boundary
func (a *Appointment) Validate() error {
	if strings.TrimSpace(a.ServiceID) == "" {
		return fmt.Errorf("service id is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if err := a.Time.Validate(); err != nil {
		return fmt.Errorf("invalid time: %v", err)
	}
	if a.Time.Minutes() >= 24*60 {
		return fmt.Errorf("start time must be before 24:00")
	}
	if _, err := ParseAppointmentStatus(string(a.Status)); err != nil {
		return err
	}
	return nil
}
