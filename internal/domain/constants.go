package domain

// Default configuration values
const (
	DefaultSlotStepMinutes  = 30
	DefaultServiceCategory  = "Geral"
	DefaultUpcomingLimit    = 10
	DefaultStorageTimeoutMs = 2000
)

// Business validation constants
const (
	MinSlotStepMinutes   = 5
	MaxSlotStepMinutes   = 240
	MaxServiceDuration   = 720 // 12 hours
	MaxServiceNameLength = 120
	MaxClientNameLength  = 120
	MaxUpcomingLimit     = 100
	MaxDescriptionLength = 2000
	MaxCategoryLength    = 60
	MaxClientEmailLength = 254
	DaysPerWeek          = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
