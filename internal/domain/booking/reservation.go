package booking

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// ReleaseCause records why capacity was returned.
type ReleaseCause string

const (
	ReleaseCancelled ReleaseCause = "cancelled"
	ReleaseExpired   ReleaseCause = "expired"
	ReleaseAdmin     ReleaseCause = "admin"
)

func (c ReleaseCause) IsValid() bool {
	switch c {
	case ReleaseCancelled, ReleaseExpired, ReleaseAdmin:
		return true
	default:
		return false
	}
}

// Reservation is the unit allocated against capacity. held and released only
// ever move from false to true.
type Reservation struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	OrderRef     string
	CustomerName string
	VariantID    uuid.UUID
	Kind         ResourceKind
	Quantity     int
	WindowStart  time.Time
	WindowEnd    *time.Time
	Held         bool
	Released     bool
	OrderStatus  OrderStatus
	ReleaseCause *ReleaseCause
	HeldAt       *time.Time
	ReleasedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DraftSpec struct {
	OrderID      uuid.UUID
	OrderRef     string
	CustomerName string
	Variant      Variant
	Quantity     int
	Start        time.Time
	Duration     time.Duration
}

// NewDraft builds an unheld reservation. Time-sliced windows end after
// Duration; date-sliced windows end after the variant's term.
func NewDraft(spec DraftSpec, now time.Time) (*Reservation, error) {
	if !spec.Variant.Active {
		return nil, ErrVariantInactive
	}
	if spec.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	start, end, err := WindowFor(spec.Variant, spec.Start, spec.Duration)
	if err != nil {
		return nil, err
	}
	switch spec.Variant.Kind.Slicing() {
	case TimeSliced:
		// A stored time-sliced window never spans two calendar days.
		if !SameDay(start, end.Add(-time.Nanosecond)) {
			return nil, ErrInvalidWindow
		}
	case DateSliced:
		if end == nil {
			return nil, ErrTermNotConfigured
		}
	}
	return &Reservation{
		ID:           uuid.New(),
		OrderID:      spec.OrderID,
		OrderRef:     spec.OrderRef,
		CustomerName: spec.CustomerName,
		VariantID:    spec.Variant.ID,
		Kind:         spec.Variant.Kind,
		Quantity:     spec.Quantity,
		WindowStart:  start,
		WindowEnd:    end,
		OrderStatus:  OrderPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// WindowFor derives the reservation window for a variant. Time-sliced
// windows may run past operating hours or midnight; the engine rejects
// those with a verdict. A date-sliced variant without a term yields an
// open-ended window.
func WindowFor(v Variant, start time.Time, duration time.Duration) (time.Time, *time.Time, error) {
	switch v.Kind.Slicing() {
	case TimeSliced:
		if duration <= 0 {
			return time.Time{}, nil, ErrInvalidWindow
		}
		end := start.Add(duration)
		return start, &end, nil
	case DateSliced:
		from := StartOfDay(start)
		if v.TermMonths <= 0 {
			return from, nil, nil
		}
		end := from.AddDate(0, v.TermMonths, 0)
		return from, &end, nil
	default:
		return time.Time{}, nil, ErrInvalidKind
	}
}

// CountsTowardCapacity is the single activity rule for occupancy.
func (r *Reservation) CountsTowardCapacity() bool {
	return r.Held && !r.Released && r.OrderStatus != OrderCancelled
}

func (r *Reservation) CanHold() error {
	if r.Released || r.OrderStatus == OrderCancelled {
		return ErrReservationReleased
	}
	return nil
}

// IsStaleUnpaid reports whether the order behind a held reservation has
// stayed unpaid for longer than retention since it was created.
func (r *Reservation) IsStaleUnpaid(now time.Time, retention time.Duration) bool {
	if !r.CountsTowardCapacity() || r.OrderStatus != OrderPending {
		return false
	}
	return now.Sub(r.CreatedAt) > retention
}
