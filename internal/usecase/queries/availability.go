package queries

import (
	"context"
	"errors"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/shared"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow      shared.UnitOfWork
	settings shared.Settings
	clock    clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, settings shared.Settings, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, settings: settings, clock: clock}
}

// GetAvailability answers whether the requested window can take quantity
// more units. It is advisory: the hold re-verifies under lock.
func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error) {
	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		variants, err := reads.Variants(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		engine := booking.NewEngine(booking.NewCatalog(q.settings.Policy, variants))

		kind, start, end, err := q.resolveWindow(engine.Catalog(), in)
		if err != nil {
			return err
		}
		capacity, err := engine.Catalog().TotalCapacity(kind)
		if err != nil {
			return commands.MarkDomainErr(err)
		}

		from, to := shared.QueryWindow(kind, start, end)
		existing, err := reads.ActiveReservations(ctx, shared.LockSet(kind), from, to)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		verdict, err := engine.CheckAvailability(booking.AvailabilityRequest{
			Kind:     kind,
			Start:    start,
			End:      end,
			Quantity: in.Quantity,
		}, existing, q.clock.Now())
		if err != nil {
			return commands.MarkDomainErr(err)
		}

		view = &AvailabilityView{
			Kind:      kind,
			Start:     start,
			End:       end,
			Quantity:  in.Quantity,
			Available: verdict.Available,
			Remaining: verdict.Remaining,
			Capacity:  capacity,
			Reason:    verdict.Reason,
			Message:   verdict.Message(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *availabilityQueriesImpl) resolveWindow(catalog *booking.Catalog, in AvailabilityInput) (booking.ResourceKind, time.Time, *time.Time, error) {
	start := in.Start
	if q.settings.Location != nil {
		start = start.In(q.settings.Location)
	}

	if in.VariantID != nil {
		v, err := catalog.Variant(*in.VariantID)
		if err != nil {
			return "", time.Time{}, nil, commands.MarkDomainErr(err)
		}
		from, end, err := booking.WindowFor(v, start, in.Duration)
		if err != nil {
			return "", time.Time{}, nil, commands.MarkDomainErr(err)
		}
		return v.Kind, from, end, nil
	}

	if !in.Kind.IsValid() {
		return "", time.Time{}, nil, errs.Mark(booking.ErrInvalidKind, errs.ErrValidation)
	}

	// Without a variant a date-sliced check borrows the term of the kind's
	// first active variant.
	v, ok := catalog.FirstActive(in.Kind)
	if !ok {
		v = booking.Variant{Kind: in.Kind, Active: true}
	}
	from, end, err := booking.WindowFor(v, start, in.Duration)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidWindow) {
			return "", time.Time{}, nil, errs.Mark(err, errs.ErrValidation)
		}
		return "", time.Time{}, nil, commands.MarkDomainErr(err)
	}
	return in.Kind, from, end, nil
}
