package booking

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// On returns the instant of t on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

type OperatingHours struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func DefaultOperatingHours() OperatingHours {
	return OperatingHours{
		Open:  TimeOfDay{Hour: 8},
		Close: TimeOfDay{Hour: 17},
	}
}

func (h OperatingHours) Validate() error {
	if h.Open.minutes() >= h.Close.minutes() {
		return errors.New("operating hours: open must be before close")
	}
	return nil
}

// Overlaps is a half-open interval test. A nil end is treated as +infinity.
func Overlaps(aStart time.Time, aEnd *time.Time, bStart time.Time, bEnd *time.Time) bool {
	aBeforeBEnd := bEnd == nil || aStart.Before(*bEnd)
	bBeforeAEnd := aEnd == nil || bStart.Before(*aEnd)
	return aBeforeBEnd && bBeforeAEnd
}

// IsWithinOperatingHours checks start >= open and end <= close on start's day.
func IsWithinOperatingHours(start, end time.Time, hours OperatingHours) bool {
	return !start.Before(hours.Open.On(start)) && !end.After(hours.Close.On(start))
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay is the exclusive end of t's day, i.e. the next midnight.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EffectiveEndForToday resolves the end used when testing a reservation
// against the roster day target. Committed ends are used as-is. An unbounded
// hold is active through the end of target; on the current day the roster
// window starts at now, so such a hold keeps blocking until it is released.
func EffectiveEndForToday(target time.Time, end *time.Time, now time.Time) time.Time {
	if end != nil {
		return *end
	}
	if SameDay(target, now) {
		return EndOfDay(now.In(target.Location()))
	}
	return EndOfDay(target)
}

// DayWindow is the interval a roster for target is evaluated over: minute
// granularity from now on the current day, whole-day boundaries otherwise.
func DayWindow(target, now time.Time) (time.Time, time.Time) {
	now = now.In(target.Location())
	if SameDay(target, now) {
		return now.Truncate(time.Minute), EndOfDay(target)
	}
	return StartOfDay(target), EndOfDay(target)
}

// DateRange widens [start, end) to day boundaries. Used for date-sliced kinds.
func DateRange(start time.Time, end *time.Time) (time.Time, *time.Time) {
	from := StartOfDay(start)
	if end == nil {
		return from, nil
	}
	to := StartOfDay(*end)
	if to.Before(*end) {
		to = to.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		to = from.AddDate(0, 0, 1)
	}
	return from, &to
}
