package commands

import (
	"context"
	"errors"
	"log/slog"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

type ReservationCommands interface {
	Draft(ctx context.Context, in DraftInput) (*booking.Reservation, error)
	// DraftAndHold creates and holds a reservation in one transaction.
	DraftAndHold(ctx context.Context, in DraftInput) (*HoldResult, error)
	Hold(ctx context.Context, reservationID uuid.UUID) (*HoldResult, error)
	Release(ctx context.Context, reservationID uuid.UUID, cause booking.ReleaseCause) (*ReleaseResult, error)
	CompleteOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	ExpireUnpaid(ctx context.Context) (*ExpireResult, error)
}

// errLostRace aborts a hold transaction whose re-verification failed so
// nothing written in it is committed.
var errLostRace = errors.New("hold re-verification failed")

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	settings shared.Settings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	settings shared.Settings,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		settings: settings,
		clock:    clock,
		logger:   logger,
	}
}

func (c *reservationCommandsImpl) Draft(ctx context.Context, in DraftInput) (*booking.Reservation, error) {
	var created *booking.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.newDraft(ctx, tx.Reads(), in)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *reservationCommandsImpl) DraftAndHold(ctx context.Context, in DraftInput) (*HoldResult, error) {
	var result *HoldResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		res, err := c.newDraft(ctx, tx.Reads(), in)
		if err != nil {
			return err
		}
		if err := tx.Reservations().LockKinds(ctx, shared.LockSet(res.Kind)); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result, err = c.holdLocked(ctx, tx, res)
		if err != nil {
			return err
		}
		if !result.Held {
			return errLostRace
		}
		return nil
	})
	if errors.Is(err, errLostRace) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Hold consumes capacity for a drafted reservation. Capacity is re-verified
// under per-kind locks in the same transaction that flips held, so two
// concurrent holds cannot both pass the check.
func (c *reservationCommandsImpl) Hold(ctx context.Context, reservationID uuid.UUID) (*HoldResult, error) {
	var result *HoldResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		current, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return mapReservationErr(err)
		}
		if err := tx.Reservations().LockKinds(ctx, shared.LockSet(current.Kind)); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		res, err := tx.Reservations().GetForUpdate(ctx, reservationID)
		if err != nil {
			return mapReservationErr(err)
		}
		if err := res.CanHold(); err != nil {
			return errs.Mark(err, errs.ErrReservationReleased)
		}
		if res.Held {
			result = &HoldResult{
				Reservation: res,
				Held:        true,
				AlreadyHeld: true,
				Verdict:     booking.Verdict{Available: true, Reason: booking.ReasonAvailable},
			}
			return nil
		}
		result, err = c.holdLocked(ctx, tx, res)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !result.Held {
		c.logger.Info("hold rejected on re-verification",
			slog.String("reservation_id", reservationID.String()),
			slog.String("reason", string(result.Verdict.Reason)))
	}
	return result, nil
}

// holdLocked expects the kind locks to be held by tx.
func (c *reservationCommandsImpl) holdLocked(ctx context.Context, tx shared.Tx, res *booking.Reservation) (*HoldResult, error) {
	variants, err := tx.Reads().Variants(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	engine := booking.NewEngine(booking.NewCatalog(c.settings.Policy, variants))

	kinds := shared.LockSet(res.Kind)
	from, to := shared.QueryWindow(res.Kind, res.WindowStart, res.WindowEnd)
	existing, err := tx.Reads().ActiveReservations(ctx, kinds, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	verdict, err := engine.CheckAvailability(booking.AvailabilityRequest{
		Kind:      res.Kind,
		Start:     res.WindowStart,
		End:       res.WindowEnd,
		Quantity:  res.Quantity,
		ExcludeID: res.ID,
	}, existing, now)
	if err != nil {
		return nil, MarkDomainErr(err)
	}
	if !verdict.Available {
		return &HoldResult{Reservation: res, Held: false, Verdict: verdict}, nil
	}

	if err := tx.Reservations().MarkHeld(ctx, res.ID, now); err != nil {
		return nil, mapReservationErr(err)
	}
	res.Held = true
	res.HeldAt = &now
	res.UpdatedAt = now
	return &HoldResult{Reservation: res, Held: true, Verdict: verdict}, nil
}

// Release returns held capacity. Repeated calls are no-ops.
func (c *reservationCommandsImpl) Release(ctx context.Context, reservationID uuid.UUID, cause booking.ReleaseCause) (*ReleaseResult, error) {
	if !cause.IsValid() {
		return nil, errs.Mark(errs.New("invalid release cause"), errs.ErrValidation)
	}

	var result *ReleaseResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		changed, err := tx.Reservations().MarkReleased(ctx, reservationID, cause, now)
		if err != nil {
			return mapReservationErr(err)
		}
		res, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return mapReservationErr(err)
		}
		result = &ReleaseResult{Reservation: res, Changed: changed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Changed {
		c.logger.Info("reservation released",
			slog.String("reservation_id", reservationID.String()),
			slog.String("cause", string(cause)))
	}
	return result, nil
}

func (c *reservationCommandsImpl) CompleteOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var affected int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reservations().CompleteOrder(ctx, orderID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// ExpireUnpaid releases held reservations whose order has stayed pending
// past the retention window. Each release runs in its own transaction.
func (c *reservationCommandsImpl) ExpireUnpaid(ctx context.Context) (*ExpireResult, error) {
	cutoff := c.clock.Now().Add(-c.settings.UnpaidRetention)
	limit := c.settings.SweepBatchSize
	if limit <= 0 {
		limit = 100
	}

	var ids []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Reservations().StaleUnpaid(ctx, cutoff, limit)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		ids = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &ExpireResult{Scanned: len(ids), Cutoff: cutoff}
	for _, id := range ids {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		rel, err := c.Release(ctx, id, booking.ReleaseExpired)
		if err != nil {
			c.logger.Warn("failed to expire reservation",
				slog.String("reservation_id", id.String()),
				slog.String("error", err.Error()))
			continue
		}
		if rel.Changed {
			result.Released++
		}
	}
	return result, nil
}

func (c *reservationCommandsImpl) newDraft(ctx context.Context, reads shared.CommandReads, in DraftInput) (*booking.Reservation, error) {
	if in.OrderID == uuid.Nil || in.OrderRef == "" {
		return nil, errs.Mark(errs.New("order id and reference are required"), errs.ErrValidation)
	}
	variants, err := reads.Variants(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	catalog := booking.NewCatalog(c.settings.Policy, variants)
	variant, err := catalog.Variant(in.VariantID)
	if err != nil {
		return nil, MarkDomainErr(err)
	}

	start := in.Start
	if c.settings.Location != nil {
		start = start.In(c.settings.Location)
	}
	res, err := booking.NewDraft(booking.DraftSpec{
		OrderID:      in.OrderID,
		OrderRef:     in.OrderRef,
		CustomerName: in.CustomerName,
		Variant:      variant,
		Quantity:     in.Quantity,
		Start:        start,
		Duration:     in.Duration,
	}, c.clock.Now())
	if err != nil {
		return nil, MarkDomainErr(err)
	}
	return res, nil
}

func mapReservationErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) || errors.Is(err, booking.ErrReservationNotFound) {
		return errs.Mark(err, errs.ErrReservationNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// MarkDomainErr sorts domain failures into validation and configuration.
func MarkDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrVariantNotFound):
		return errs.Mark(err, errs.ErrVariantNotFound)
	case errors.Is(err, booking.ErrCapacityNotConfigured),
		errors.Is(err, booking.ErrTermNotConfigured):
		return errs.Mark(err, errs.ErrConfiguration)
	case errors.Is(err, booking.ErrInvalidKind),
		errors.Is(err, booking.ErrInvalidWindow),
		errors.Is(err, booking.ErrInvalidQuantity),
		errors.Is(err, booking.ErrVariantInactive):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
