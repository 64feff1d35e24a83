package request

import (
	"errors"
	"fmt"
	"time"

	"workspace-booking/internal/domain/booking"
)

const dateLayout = "2006-01-02"

var ErrStartTimeRequired = errors.New("start_time is required for time-sliced bookings")

// ParseDate reads a YYYY-MM-DD calendar date as local midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// startOf combines a date and an optional HH:MM into the window start.
func startOf(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	if clock == "" {
		return day, nil
	}
	tod, err := booking.ParseTimeOfDay(clock)
	if err != nil {
		return time.Time{}, err
	}
	return tod.On(day), nil
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
