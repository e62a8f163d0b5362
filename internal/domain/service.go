package domain

import (
	"fmt"
	"time"
)

// Service represents a bookable item of the catalog.
// Limits in tags mirror the column sizes of the services table.
type Service struct {
	ID              string
	Name            string  `validate:"notblank,max=120"`
	DurationMinutes int     `validate:"gt=0,lte=720"`
	Price           float64 `validate:"gte=0"`
	Description     string  `validate:"max=2000"`
	Category        string  `validate:"max=60"`
	Active          bool    // false = archived, hidden from new bookings

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the service definition. Zero-length services never reach the ledger.
func (s *Service) Validate() error {
	if err := ValidateStruct(s); err != nil {
		return fmt.Errorf("%w: invalid service: %v", ErrConfig, err)
	}
	return nil
}

// IsBookable returns true if new appointments may reference the service
func (s *Service) IsBookable() bool {
	return s.Active && s.DurationMinutes > 0
}
