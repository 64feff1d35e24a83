package readstore

import (
	"context"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/db"
	"workspace-booking/internal/infra/repository"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	reservationByIDSQL = `SELECT ` + repository.ReservationColumns + ` FROM reservations WHERE id = $1`

	// A nil upper bound means the window is open ended.
	activeReservationsSQL = `SELECT ` + repository.ReservationColumns + ` FROM reservations
WHERE kind = ANY($1)
	AND held AND NOT released AND order_status <> 'cancelled'
	AND (window_end IS NULL OR window_end > $2)
	AND ($3::timestamptz IS NULL OR window_start < $3)
ORDER BY window_start, created_at, id`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	res, err := repository.ScanReservation(r.db.QueryRow(ctx, reservationByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// FindActive returns capacity-consuming reservations of kinds intersecting [from, to).
func (r *ReservationReadStore) FindActive(ctx context.Context, kinds []booking.ResourceKind, from time.Time, to *time.Time) ([]booking.Reservation, error) {
	rows, err := r.db.Query(ctx, activeReservationsSQL, repository.KindStrings(kinds), from, pgconv.TimePtrToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active reservations", err)
	}
	defer rows.Close()

	var result []booking.Reservation
	for rows.Next() {
		res, err := repository.ScanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}
