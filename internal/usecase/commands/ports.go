package commands

import (
	"time"

	"workspace-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Input and result types of the reservation lifecycle.

type DraftInput struct {
	OrderID      uuid.UUID
	OrderRef     string
	CustomerName string
	VariantID    uuid.UUID
	Quantity     int
	Start        time.Time
	// Duration applies to time-sliced kinds; date-sliced kinds use the variant term.
	Duration time.Duration
}

type HoldResult struct {
	Reservation *booking.Reservation
	Held        bool
	// AlreadyHeld is set when the reservation had been held by an earlier call.
	AlreadyHeld bool
	Verdict     booking.Verdict
}

// Message is the user-facing outcome of the hold. Capacity taken between
// the availability check and the hold reads as a lost race.
func (r *HoldResult) Message() string {
	switch {
	case r.Held:
		return booking.ReasonAvailable.Message()
	case r.Verdict.Reason == booking.ReasonFullyBooked, r.Verdict.Reason == booking.ReasonBlockedByPeer:
		return booking.MessageLostRace
	default:
		return r.Verdict.Message()
	}
}

type ReleaseResult struct {
	Reservation *booking.Reservation
	// Changed is false when the reservation had already been released.
	Changed bool
}

type ExpireResult struct {
	Scanned  int
	Released int
	Cutoff   time.Time
}
