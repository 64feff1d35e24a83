package queries

import (
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AvailabilityInput struct {
	Kind booking.ResourceKind
	// VariantID, when set, resolves kind and window length from the variant.
	VariantID *uuid.UUID
	Start     time.Time
	Duration  time.Duration
	Quantity  int
}

type AvailabilityView struct {
	Kind      booking.ResourceKind
	Start     time.Time
	End       *time.Time
	Quantity  int
	Available bool
	Remaining int
	Capacity  int
	Reason    booking.Reason
	Message   string
}

type ReservationView struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	OrderRef     string
	CustomerName string
	VariantID    uuid.UUID
	Kind         booking.ResourceKind
	Quantity     int
	WindowStart  time.Time
	WindowEnd    *time.Time
	Held         bool
	Released     bool
	OrderStatus  booking.OrderStatus
	ReleaseCause *booking.ReleaseCause
	HeldAt       *time.Time
	ReleasedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RosterView struct {
	Date   time.Time
	Groups []booking.RosterGroup
}

// NewReservationView projects a reservation into the given location.
func NewReservationView(res *booking.Reservation, loc *time.Location) *ReservationView {
	view := &ReservationView{
		ID:           res.ID,
		OrderID:      res.OrderID,
		OrderRef:     res.OrderRef,
		CustomerName: res.CustomerName,
		VariantID:    res.VariantID,
		Kind:         res.Kind,
		Quantity:     res.Quantity,
		WindowStart:  res.WindowStart,
		WindowEnd:    res.WindowEnd,
		Held:         res.Held,
		Released:     res.Released,
		OrderStatus:  res.OrderStatus,
		ReleaseCause: res.ReleaseCause,
		HeldAt:       res.HeldAt,
		ReleasedAt:   res.ReleasedAt,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
	if loc != nil {
		view.WindowStart = view.WindowStart.In(loc)
		view.WindowEnd = ptr.TimeIn(view.WindowEnd, loc)
	}
	return view
}
