package domain

import "time"

// Business validation constants
const (
	MinGuestCount = 1
	MaxGuestCount = 1000 // venue-wide ceiling

	MinFullNameLength = 2
	MaxFullNameLength = 100
	MaxEmailLength    = 255
	MinPhoneLength    = 8
	MaxPhoneLength    = 20
	MaxNotesLength    = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	MonthKey   = "2006-01"

	DefaultVenueTimezone = "Indian/Maldives"
)

// BlockingStatuses statuses that reserve a date and space against other bookings
var BlockingStatuses = []BookingStatus{
	StatusApproved,
	StatusConfirmed,
	StatusCompleted,
}

// Date returns the civil date y-m-d as midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly drops the time of day, keeping the calendar date of t in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// TodayIn returns today's calendar date as observed in loc
func TodayIn(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return DateOnly(now.In(loc))
}

// ParseDate parses YYYY-MM-DD into a civil date
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateFormat, raw)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
