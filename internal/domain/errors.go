package domain

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
)

// Error taxonomy shared by every layer. Packages wrap these sentinels
// with their own context so callers can branch with errors.Is.
var (
	// ErrConfig malformed configuration (working hours, service definition). Fatal at startup.
	ErrConfig = errors.New("config error")

	// ErrConflict the appointment interval overlaps a scheduled appointment.
	ErrConflict = errors.New("conflict")

	// ErrNotFound unknown identifier.
	ErrNotFound = errors.New("not found")

	// ErrIdempotentState the requested state is already in place. Non-fatal.
	ErrIdempotentState = errors.New("already in requested state")

	// ErrInvalidTransition the status change is not allowed from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTransient external dependency timed out or is unavailable. Retry is up to the caller.
	ErrTransient = errors.New("transient error")
)

// IsTimeout reports storage/network failures that the caller may retry.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// RejectionReason enumerates why a booking attempt was refused.
type RejectionReason string

const (
	ReasonOutsideWorkingHours RejectionReason = "OUTSIDE_WORKING_HOURS"
	ReasonSlotTaken           RejectionReason = "SLOT_TAKEN"
	ReasonInPast              RejectionReason = "IN_PAST"
	ReasonUnknownService      RejectionReason = "UNKNOWN_SERVICE"
	ReasonInvalidClientInfo   RejectionReason = "INVALID_CLIENT_INFO"
)

var rejectionMessages = map[RejectionReason]string{
	ReasonOutsideWorkingHours: "O horário escolhido está fora do expediente.",
	ReasonSlotTaken:           "Este horário acabou de ser reservado. Escolha outro horário.",
	ReasonInPast:              "Não é possível agendar em um horário que já passou.",
	ReasonUnknownService:      "Serviço não encontrado.",
	ReasonInvalidClientInfo:   "Informe um nome e um e-mail válidos.",
}

// Message returns the user-facing (pt-BR) text for the reason.
func (r RejectionReason) Message() string {
	if msg, ok := rejectionMessages[r]; ok {
		return msg
	}
	return "Não foi possível concluir o agendamento."
}

// RejectionError is returned by booking validation. It is always recoverable.
type RejectionError struct {
	Reason RejectionReason
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("booking rejected: %s", e.Reason)
	}
	return fmt.Sprintf("booking rejected: %s: %s", e.Reason, e.Detail)
}

// Reject builds a RejectionError with a formatted detail.
func Reject(reason RejectionReason, format string, args ...interface{}) *RejectionError {
	return &RejectionError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// AsRejection extracts a RejectionError from the chain.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
