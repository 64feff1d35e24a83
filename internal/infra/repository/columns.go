package repository

import (
	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationColumns is the select list ScanReservation expects.
const ReservationColumns = `id, order_id, order_ref, customer_name, variant_id, kind, quantity,
	window_start, window_end, held, released, order_status, release_cause,
	held_at, released_at, created_at, updated_at`

func ScanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		res          booking.Reservation
		kind         string
		status       string
		windowEnd    pgtype.Timestamptz
		releaseCause pgtype.Text
		heldAt       pgtype.Timestamptz
		releasedAt   pgtype.Timestamptz
		quantity     int32
	)
	err := row.Scan(
		&res.ID, &res.OrderID, &res.OrderRef, &res.CustomerName, &res.VariantID, &kind, &quantity,
		&res.WindowStart, &windowEnd, &res.Held, &res.Released, &status, &releaseCause,
		&heldAt, &releasedAt, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Kind = booking.ResourceKind(kind)
	res.Quantity = int(quantity)
	res.OrderStatus = booking.OrderStatus(status)
	res.WindowEnd = pgconv.TimePtrFromPgtype(windowEnd)
	res.HeldAt = pgconv.TimePtrFromPgtype(heldAt)
	res.ReleasedAt = pgconv.TimePtrFromPgtype(releasedAt)
	if cause := pgconv.StringPtrFromPgtype(releaseCause); cause != nil {
		c := booking.ReleaseCause(*cause)
		res.ReleaseCause = &c
	}
	return &res, nil
}

func KindStrings(kinds []booking.ResourceKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
