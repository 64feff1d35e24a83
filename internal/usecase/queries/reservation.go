package queries

import (
	"context"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow      shared.UnitOfWork
	settings shared.Settings
}

func NewReservationQueries(uow shared.UnitOfWork, settings shared.Settings) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, settings: settings}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	res, err := q.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewReservationView(res, q.settings.Location), nil
}
