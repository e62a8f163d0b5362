package domain

import "time"

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay compares calendar dates ignoring the time of day
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast returns true if date is before the calendar day of now
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now.In(date.Location())))
}
