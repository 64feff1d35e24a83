package booking

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	Kind     ResourceKind
	Start    time.Time
	End      *time.Time
	Quantity int
	// ExcludeID skips the reservation being re-verified at hold time.
	ExcludeID uuid.UUID
}

type Engine struct {
	catalog *Catalog
}

func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// CheckAvailability returns a verdict for req against existing reservations.
// Business unavailability is a verdict; only malformed requests and missing
// capacity configuration are errors.
func (e *Engine) CheckAvailability(req AvailabilityRequest, existing []Reservation, now time.Time) (Verdict, error) {
	if !req.Kind.IsValid() {
		return Verdict{}, ErrInvalidKind
	}
	if req.Quantity < 1 {
		return Verdict{}, ErrInvalidQuantity
	}
	total, err := e.catalog.TotalCapacity(req.Kind)
	if err != nil {
		return Verdict{}, err
	}

	switch req.Kind.Slicing() {
	case TimeSliced:
		return e.checkTimeSliced(req, total, existing, now)
	case DateSliced:
		return e.checkDateSliced(req, total, existing, now)
	default:
		return Verdict{}, ErrInvalidKind
	}
}

func (e *Engine) checkTimeSliced(req AvailabilityRequest, total int, existing []Reservation, now time.Time) (Verdict, error) {
	if req.End == nil || !req.End.After(req.Start) {
		return Verdict{}, ErrInvalidWindow
	}

	hours := e.catalog.Hours()
	switch {
	case req.Start.Before(now):
		return rejected(ReasonPastTime), nil
	case req.Start.Before(hours.Open.On(req.Start)):
		return rejected(ReasonBeforeOpening), nil
	case req.End.After(hours.Close.On(req.Start)):
		// Also covers windows running past midnight.
		return rejected(ReasonAfterClosing), nil
	}

	occupied := SumQuantity(ActiveOverlapping(existing, []ResourceKind{req.Kind}, req.Start, req.End, req.ExcludeID))
	peers := ExclusionPeersOf(req.Kind)
	if len(peers) > 0 {
		peerOccupied := SumQuantity(ActiveOverlapping(existing, peers, req.Start, req.End, req.ExcludeID))
		if peerOccupied > 0 {
			return rejected(ReasonBlockedByPeer), nil
		}
	}
	return verdictFor(total, occupied, req.Quantity), nil
}

func (e *Engine) checkDateSliced(req AvailabilityRequest, total int, existing []Reservation, now time.Time) (Verdict, error) {
	if req.Start.IsZero() {
		return Verdict{}, ErrInvalidWindow
	}
	if req.End != nil && !req.End.After(req.Start) {
		return Verdict{}, ErrInvalidWindow
	}
	if StartOfDay(req.Start).Before(StartOfDay(now.In(req.Start.Location()))) {
		return rejected(ReasonPastTime), nil
	}

	from, to := DateRange(req.Start, req.End)
	var occupied int
	for i := range existing {
		r := &existing[i]
		if r.Kind != req.Kind || r.ID == req.ExcludeID || !r.CountsTowardCapacity() {
			continue
		}
		rFrom, rTo := DateRange(r.WindowStart.In(from.Location()), inLocation(r.WindowEnd, from.Location()))
		if Overlaps(from, to, rFrom, rTo) {
			occupied += r.Quantity
		}
	}
	return verdictFor(total, occupied, req.Quantity), nil
}

func verdictFor(total, occupied, quantity int) Verdict {
	remaining := max(0, total-occupied)
	if remaining >= quantity {
		return Verdict{Available: true, Remaining: remaining, Reason: ReasonAvailable}
	}
	return Verdict{Available: false, Remaining: remaining, Reason: ReasonFullyBooked}
}

// ActiveOverlapping filters reservations of kinds that count toward capacity
// and overlap [start, end).
func ActiveOverlapping(rs []Reservation, kinds []ResourceKind, start time.Time, end *time.Time, exclude uuid.UUID) []Reservation {
	var out []Reservation
	for i := range rs {
		r := rs[i]
		if !containsKind(kinds, r.Kind) || !r.CountsTowardCapacity() {
			continue
		}
		if exclude != uuid.Nil && r.ID == exclude {
			continue
		}
		if Overlaps(start, end, r.WindowStart, r.WindowEnd) {
			out = append(out, r)
		}
	}
	return out
}

func SumQuantity(rs []Reservation) int {
	total := 0
	for _, r := range rs {
		total += r.Quantity
	}
	return total
}

func containsKind(kinds []ResourceKind, k ResourceKind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}

func inLocation(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}
