//go:build unit

package booking_test

import (
	"fmt"
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterBuilder(variants []booking.Variant) *booking.RosterBuilder {
	return booking.NewRosterBuilder(booking.NewCatalog(booking.DefaultPolicy(), variants), nil, booking.DefaultRosterLabels())
}

func freeRow(subType, label string) booking.RosterRow {
	return booking.RosterRow{SubType: subType, CapacityLabel: label, Occupancy: booking.OccupancyAvailable}
}

func fullRow(subType, label string, r booking.Reservation) booking.RosterRow {
	return booking.RosterRow{
		SubType:       subType,
		CapacityLabel: label,
		Occupancy:     booking.OccupancyFull,
		OrderRef:      r.OrderRef,
		CustomerName:  r.CustomerName,
		CheckIn:       tp(r.WindowStart),
		CheckOut:      r.WindowEnd,
	}
}

func withRef(b *builder.ReservationBuilder, ref, name string) booking.Reservation {
	return b.With(func(r *booking.Reservation) {
		r.OrderRef = ref
		r.CustomerName = name
	}).Build()
}

func TestBuildRoster_Coworking(t *testing.T) {
	variants := builder.StandardCatalog()
	desk := builder.VariantOf(variants, booking.KindSharedDeskPool)
	room := builder.VariantOf(variants, booking.KindExclusiveRoom)
	day := at(12, 0, 0)
	now := at(10, 7, 0)

	t.Run("desks fill in start order and the room shows as taken", func(t *testing.T) {
		late := withRef(builder.NewReservationBuilder(desk, at(12, 13, 0), tp(at(12, 15, 0))).Quantity(2), "ORD-2", "Andi")
		early := withRef(builder.NewReservationBuilder(desk, at(12, 9, 0), tp(at(12, 10, 0))), "ORD-1", "Rina")
		otherDay := withRef(builder.NewReservationBuilder(desk, at(13, 9, 0), tp(at(13, 10, 0))), "ORD-3", "Dewi")

		got, err := rosterBuilder(variants).BuildRoster(booking.GroupCoworking, day, []booking.Reservation{late, early, otherDay}, now)
		require.NoError(t, err)

		want := []booking.RosterRow{
			fullRow("Desk 1", "1 pax", early),
			fullRow("Desk 2", "1 pax", late),
			fullRow("Desk 3", "1 pax", late),
		}
		for i := 4; i <= 8; i++ {
			want = append(want, freeRow(fmt.Sprintf("Desk %d", i), "1 pax"))
		}
		want = append(want, fullRow("Exclusive Room", "8 pax", early))

		if diff := cmp.Diff(want, got.Rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "Coworking Space", got.RoomLabel)
		assert.Equal(t, booking.GroupCoworking, got.Type)
		assert.Equal(t, day, got.Date)
		assert.Zero(t, got.Overflow)
	})

	t.Run("an exclusive booking fills every desk", func(t *testing.T) {
		r := withRef(builder.NewReservationBuilder(room, at(12, 9, 0), tp(at(12, 12, 0))), "ORD-9", "PT Maju")

		got, err := rosterBuilder(variants).BuildRoster(booking.GroupCoworking, day, []booking.Reservation{r}, now)
		require.NoError(t, err)

		var want []booking.RosterRow
		for i := 1; i <= 8; i++ {
			want = append(want, fullRow(fmt.Sprintf("Desk %d", i), "1 pax", r))
		}
		want = append(want, fullRow("Exclusive Room", "8 pax", r))

		if diff := cmp.Diff(want, got.Rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty day", func(t *testing.T) {
		got, err := rosterBuilder(variants).BuildRoster(booking.GroupCoworking, day, nil, now)
		require.NoError(t, err)
		require.Len(t, got.Rows, 9)
		for _, row := range got.Rows {
			assert.Equal(t, booking.OccupancyAvailable, row.Occupancy)
		}
	})

	t.Run("overbooked desks overflow", func(t *testing.T) {
		r := builder.NewReservationBuilder(desk, at(12, 9, 0), tp(at(12, 10, 0))).Quantity(10).Build()

		got, err := rosterBuilder(variants).BuildRoster(booking.GroupCoworking, day, []booking.Reservation{r}, now)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Overflow)
	})
}

func TestBuildRoster_OfficeSuite(t *testing.T) {
	variants := []booking.Variant{
		builder.NewVariantBuilder(booking.KindOfficeSuite).WithStock(2).With(func(b *builder.VariantBuilder) { b.Pax = 4; b.TermMonths = 1 }).BuildDomain(),
		builder.NewVariantBuilder(booking.KindOfficeSuite).With(func(b *builder.VariantBuilder) { b.Pax = 8; b.TermMonths = 1; b.SortOrder = 1 }).BuildDomain(),
	}
	day := at(12, 0, 0)
	now := at(10, 7, 0)

	monthly := withRef(builder.NewReservationBuilder(variants[1], at(1, 0, 0), tp(time.Date(2025, 4, 1, 0, 0, 0, 0, wib))), "ORD-5", "CV Sejahtera")
	expired := builder.NewReservationBuilder(variants[0], time.Date(2025, 2, 1, 0, 0, 0, 0, wib), tp(at(1, 0, 0))).Build()

	got, err := rosterBuilder(variants).BuildRoster(booking.GroupOfficeSuite, day, []booking.Reservation{monthly, expired}, now)
	require.NoError(t, err)

	want := []booking.RosterRow{
		fullRow("Room 1", "8 pax", monthly),
		freeRow("Room 2", ""),
	}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Private Office", got.RoomLabel)

	t.Run("committed end keeps occupying later days it covers", func(t *testing.T) {
		later, err := rosterBuilder(variants).BuildRoster(booking.GroupOfficeSuite, at(31, 0, 0), []booking.Reservation{monthly}, now)
		require.NoError(t, err)
		assert.Equal(t, booking.OccupancyFull, later.Rows[0].Occupancy)

		after, err := rosterBuilder(variants).BuildRoster(booking.GroupOfficeSuite, time.Date(2025, 4, 1, 0, 0, 0, 0, wib), []booking.Reservation{monthly}, now)
		require.NoError(t, err)
		assert.Equal(t, booking.OccupancyAvailable, after.Rows[0].Occupancy)
	})
}

func TestBuildRoster_Today(t *testing.T) {
	variants := builder.StandardCatalog()
	desk := builder.VariantOf(variants, booking.KindSharedDeskPool)
	room := builder.VariantOf(variants, booking.KindExclusiveRoom)
	now := at(10, 12, 30)

	finished := builder.NewReservationBuilder(desk, at(10, 9, 0), tp(at(10, 11, 0))).Build()
	unbounded := builder.NewReservationBuilder(room, now.Add(-time.Hour), nil).Build()

	got, err := rosterBuilder(variants).BuildRoster(booking.GroupCoworking, at(10, 0, 0), []booking.Reservation{finished, unbounded}, now)
	require.NoError(t, err)

	for _, row := range got.Rows {
		assert.Equal(t, booking.OccupancyFull, row.Occupancy, row.SubType)
		assert.Equal(t, unbounded.OrderRef, row.OrderRef)
		assert.Nil(t, row.CheckOut)
	}
}

func TestBuildAll(t *testing.T) {
	variants := builder.StandardCatalog()
	virtual := builder.VariantOf(variants, booking.KindVirtualSubscription)
	sub := builder.NewReservationBuilder(virtual, at(1, 0, 0), nil).Build()

	groups, err := rosterBuilder(variants).BuildAll(at(12, 0, 0), []booking.Reservation{sub}, at(10, 7, 0))
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, booking.GroupCoworking, groups[0].Type)
	assert.Equal(t, booking.GroupOfficeSuite, groups[1].Type)
	for _, g := range groups {
		for _, row := range g.Rows {
			assert.Equal(t, booking.OccupancyAvailable, row.Occupancy)
		}
	}

	t.Run("kind without catalog entries renders no rows", func(t *testing.T) {
		groups, err := rosterBuilder(nil).BuildAll(at(12, 0, 0), nil, at(10, 7, 0))
		require.NoError(t, err)
		for _, g := range groups {
			assert.Empty(t, g.Rows)
		}
	})
}

func TestSequentialAssigner(t *testing.T) {
	desk := builder.NewVariantBuilder(booking.KindSharedDeskPool).BuildDomain()
	a := builder.NewReservationBuilder(desk, at(12, 9, 0), nil).Quantity(2).Build()
	b := builder.NewReservationBuilder(desk, at(12, 10, 0), nil).Build()

	assigned, overflow := booking.SequentialAssigner{}.Assign(2, []booking.Reservation{a, b})
	require.Len(t, assigned, 2)
	assert.Equal(t, a.ID, assigned[0].ID)
	assert.Equal(t, a.ID, assigned[1].ID)
	assert.Equal(t, 1, overflow)
}
