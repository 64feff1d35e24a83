package shared

import (
	"context"
	"time"

	"workspace-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Reads() CommandReads
}

type CommandReads interface {
	Variants(ctx context.Context) ([]booking.Variant, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	// ActiveReservations returns held, unreleased, non-cancelled reservations
	// of kinds whose window intersects [from, to). A nil to is unbounded.
	ActiveReservations(ctx context.Context, kinds []booking.ResourceKind, from time.Time, to *time.Time) ([]booking.Reservation, error)
}

// ReservationRepository is the only writer of reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *booking.Reservation) error
	// LockKinds serialises holds on the given kinds until the transaction ends.
	LockKinds(ctx context.Context, kinds []booking.ResourceKind) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	MarkHeld(ctx context.Context, id uuid.UUID, at time.Time) error
	// MarkReleased flips released once; it reports false when it was already set.
	MarkReleased(ctx context.Context, id uuid.UUID, cause booking.ReleaseCause, at time.Time) (bool, error)
	CompleteOrder(ctx context.Context, orderID uuid.UUID, at time.Time) (int64, error)
	StaleUnpaid(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error)
}
