//go:build unit || e2e

package builder

import (
	"time"

	"workspace-booking/internal/domain/booking"
	reqdto "workspace-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	res booking.Reservation
}

// NewReservationBuilder starts from a held, pending reservation of one unit.
func NewReservationBuilder(v booking.Variant, start time.Time, end *time.Time) *ReservationBuilder {
	created := start.Add(-time.Hour)
	return &ReservationBuilder{res: booking.Reservation{
		ID:           uuid.New(),
		OrderID:      uuid.New(),
		OrderRef:     "ORD-TEST",
		CustomerName: "Budi Santoso",
		VariantID:    v.ID,
		Kind:         v.Kind,
		Quantity:     1,
		WindowStart:  start,
		WindowEnd:    end,
		Held:         true,
		OrderStatus:  booking.OrderPending,
		HeldAt:       &created,
		CreatedAt:    created,
		UpdatedAt:    created,
	}}
}

func (b *ReservationBuilder) With(mutate func(*booking.Reservation)) *ReservationBuilder {
	mutate(&b.res)
	return b
}

func (b *ReservationBuilder) Quantity(n int) *ReservationBuilder {
	b.res.Quantity = n
	return b
}

func (b *ReservationBuilder) Unheld() *ReservationBuilder {
	b.res.Held = false
	b.res.HeldAt = nil
	return b
}

func (b *ReservationBuilder) Released() *ReservationBuilder {
	cause := booking.ReleaseCancelled
	at := b.res.CreatedAt
	b.res.Released = true
	b.res.ReleaseCause = &cause
	b.res.ReleasedAt = &at
	b.res.OrderStatus = booking.OrderCancelled
	return b
}

func (b *ReservationBuilder) CreatedAt(t time.Time) *ReservationBuilder {
	b.res.CreatedAt = t
	b.res.UpdatedAt = t
	return b
}

func (b *ReservationBuilder) Build() booking.Reservation {
	return b.res
}

// NewCreateReservationRequest is a valid two-hour desk request for 20 Oct 2026 09:00.
func NewCreateReservationRequest(variantID uuid.UUID) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		OrderID:         uuid.New(),
		OrderRef:        "ORD-20261020-001",
		CustomerName:    "Budi Santoso",
		VariantID:       variantID,
		Quantity:        1,
		Date:            "2026-10-20",
		StartTime:       "09:00",
		DurationMinutes: 120,
	}
}
