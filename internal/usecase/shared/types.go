package shared

import (
	"sort"
	"time"

	"workspace-booking/internal/domain/booking"
)

// Settings is the booking policy resolved at startup.
type Settings struct {
	Policy          booking.Policy
	Labels          booking.RosterLabels
	Location        *time.Location
	UnpaidRetention time.Duration
	SweepBatchSize  int
}

// LockSet is kind plus its exclusion peers in lock order.
func LockSet(kind booking.ResourceKind) []booking.ResourceKind {
	kinds := append([]booking.ResourceKind{kind}, booking.ExclusionPeersOf(kind)...)
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].LockOrdinal() < kinds[j].LockOrdinal()
	})
	return kinds
}

// QueryWindow is a superset of the interval the engine evaluates for a
// window, so the store can prefilter without dropping candidates.
func QueryWindow(kind booking.ResourceKind, start time.Time, end *time.Time) (time.Time, *time.Time) {
	if kind.Slicing() != booking.DateSliced {
		return start, end
	}
	from := booking.StartOfDay(start).AddDate(0, 0, -1)
	if end == nil {
		return from, nil
	}
	to := booking.EndOfDay(*end).AddDate(0, 0, 1)
	return from, &to
}
