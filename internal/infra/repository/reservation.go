package repository

import (
	"context"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/db"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertReservationSQL = `INSERT INTO reservations (
	id, order_id, order_ref, customer_name, variant_id, kind, quantity,
	window_start, window_end, held, released, order_status, held_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	// Advisory keys live in their own namespace so they cannot collide with
	// locks taken elsewhere on the database.
	lockKindSQL = `SELECT pg_advisory_xact_lock($1, $2)`

	selectForUpdateSQL = `SELECT ` + ReservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	markHeldSQL = `UPDATE reservations
SET held = TRUE, held_at = $2, updated_at = $2
WHERE id = $1 AND NOT released AND order_status <> 'cancelled'`

	markReleasedSQL = `UPDATE reservations
SET released = TRUE, release_cause = $2, released_at = $3, updated_at = $3, order_status = 'cancelled'
WHERE id = $1 AND NOT released`

	reservationExistsSQL = `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`

	completeOrderSQL = `UPDATE reservations
SET order_status = 'completed', updated_at = $2
WHERE order_id = $1 AND held AND NOT released AND order_status = 'pending'`

	staleUnpaidSQL = `SELECT id FROM reservations
WHERE held AND NOT released AND order_status = 'pending' AND created_at < $1
ORDER BY created_at
LIMIT $2`
)

const advisoryNamespace int32 = 0x57534b // "WSK"

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) error {
	_, err := r.db.Exec(ctx, insertReservationSQL,
		res.ID, res.OrderID, res.OrderRef, res.CustomerName, res.VariantID, string(res.Kind), int32(res.Quantity),
		res.WindowStart, pgconv.TimePtrToPgtype(res.WindowEnd), res.Held, res.Released, string(res.OrderStatus),
		pgconv.TimePtrToPgtype(res.HeldAt), res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

// LockKinds takes transaction-scoped advisory locks in the order given.
// Callers pass kinds sorted by LockOrdinal so concurrent holds cannot deadlock.
func (r *ReservationRepository) LockKinds(ctx context.Context, kinds []booking.ResourceKind) error {
	for _, k := range kinds {
		if _, err := r.db.Exec(ctx, lockKindSQL, advisoryNamespace, int32(k.LockOrdinal())); err != nil {
			return infra.WrapRepoErr("failed to lock resource kind "+string(k), err)
		}
	}
	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	res, err := ScanReservation(r.db.QueryRow(ctx, selectForUpdateSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) MarkHeld(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, markHeldSQL, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to hold reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation is no longer holdable", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) MarkReleased(ctx context.Context, id uuid.UUID, cause booking.ReleaseCause, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markReleasedSQL, id, string(cause), at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release reservation", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, reservationExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reservation", err)
	}
	if !exists {
		return false, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return false, nil
}

func (r *ReservationRepository) CompleteOrder(ctx context.Context, orderID uuid.UUID, at time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, completeOrderSQL, orderID, at)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete order", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) StaleUnpaid(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, staleUnpaidSQL, createdBefore, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stale reservations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stale reservation", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stale reservations", err)
	}
	return ids, nil
}
