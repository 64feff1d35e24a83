package queries

import (
	"context"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/shared"
)

//go:generate mockgen -source=roster.go -destination=../../../tests/mock/queries/roster.go -package=queriesmock

type RosterQueries interface {
	// GetRoster renders the roster for date. A nil group renders every group.
	GetRoster(ctx context.Context, date time.Time, group *booking.RosterGroupType) (*RosterView, error)
}

type rosterQueriesImpl struct {
	uow      shared.UnitOfWork
	settings shared.Settings
	clock    clock.Clock
	assigner booking.SlotAssigner
}

func NewRosterQueries(uow shared.UnitOfWork, settings shared.Settings, clock clock.Clock) RosterQueries {
	return &rosterQueriesImpl{
		uow:      uow,
		settings: settings,
		clock:    clock,
		assigner: booking.SequentialAssigner{},
	}
}

func (q *rosterQueriesImpl) GetRoster(ctx context.Context, date time.Time, group *booking.RosterGroupType) (*RosterView, error) {
	loc := q.settings.Location
	if loc == nil {
		loc = time.Local
	}
	day := booking.StartOfDay(date.In(loc))
	now := q.clock.Now().In(loc)

	var view *RosterView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		variants, err := reads.Variants(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		kinds := []booking.ResourceKind{booking.KindSharedDeskPool, booking.KindExclusiveRoom, booking.KindOfficeSuite}
		// One day of slack either side keeps date-sliced windows in other
		// zones; the builder does the exact day match.
		from := day.AddDate(0, 0, -1)
		to := booking.EndOfDay(day).AddDate(0, 0, 1)
		existing, err := reads.ActiveReservations(ctx, kinds, from, &to)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		builder := booking.NewRosterBuilder(booking.NewCatalog(q.settings.Policy, variants), q.assigner, q.settings.Labels)
		var groups []booking.RosterGroup
		if group != nil {
			g, err := builder.BuildRoster(*group, day, existing, now)
			if err != nil {
				return commands.MarkDomainErr(err)
			}
			groups = []booking.RosterGroup{g}
		} else {
			groups, err = builder.BuildAll(day, existing, now)
			if err != nil {
				return commands.MarkDomainErr(err)
			}
		}

		view = &RosterView{Date: day, Groups: groups}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
