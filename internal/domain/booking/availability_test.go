//go:build unit

package booking_test

import (
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardEngine() (*booking.Engine, []booking.Variant) {
	variants := builder.StandardCatalog()
	return booking.NewEngine(booking.NewCatalog(booking.DefaultPolicy(), variants)), variants
}

func held(v booking.Variant, start time.Time, end *time.Time) booking.Reservation {
	return builder.NewReservationBuilder(v, start, end).Build()
}

func timeReq(kind booking.ResourceKind, start, end time.Time, qty int) booking.AvailabilityRequest {
	return booking.AvailabilityRequest{Kind: kind, Start: start, End: &end, Quantity: qty}
}

func TestCheckAvailability_FullDeskPool(t *testing.T) {
	engine, variants := standardEngine()
	desk := builder.VariantOf(variants, booking.KindSharedDeskPool)
	now := at(10, 7, 0)

	var existing []booking.Reservation
	for i := 0; i < 8; i++ {
		existing = append(existing, held(desk, at(10, 9, 0), tp(at(10, 10, 0))))
	}

	for _, window := range [][2]time.Time{
		{at(10, 9, 0), at(10, 10, 0)},
		{at(10, 8, 30), at(10, 9, 30)},
		{at(10, 9, 59), at(10, 12, 0)},
	} {
		v, err := engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, window[0], window[1], 1), existing, now)
		require.NoError(t, err)
		assert.False(t, v.Available)
		assert.Equal(t, 0, v.Remaining)
		assert.Equal(t, booking.ReasonFullyBooked, v.Reason)
	}

	v, err := engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(10, 10, 0), at(10, 11, 0), 8), existing, now)
	require.NoError(t, err)
	assert.True(t, v.Available)
	assert.Equal(t, 8, v.Remaining)
}

func TestCheckAvailability_RoomBlocksDesks(t *testing.T) {
	engine, variants := standardEngine()
	room := builder.VariantOf(variants, booking.KindExclusiveRoom)
	desk := builder.VariantOf(variants, booking.KindSharedDeskPool)
	now := at(10, 7, 0)
	existing := []booking.Reservation{held(room, at(10, 9, 0), tp(at(10, 11, 0)))}

	v, err := engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(10, 9, 30), at(10, 10, 0), 1), existing, now)
	require.NoError(t, err)
	assert.False(t, v.Available)
	assert.Equal(t, booking.ReasonBlockedByPeer, v.Reason)

	v, err = engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(10, 11, 0), at(10, 12, 0), 1), existing, now)
	require.NoError(t, err)
	assert.True(t, v.Available)
	assert.Equal(t, 8, v.Remaining)

	t.Run("a single desk blocks the room", func(t *testing.T) {
		deskHeld := []booking.Reservation{held(desk, at(10, 13, 0), tp(at(10, 14, 0)))}

		v, err := engine.CheckAvailability(timeReq(booking.KindExclusiveRoom, at(10, 12, 0), at(10, 15, 0), 1), deskHeld, now)
		require.NoError(t, err)
		assert.False(t, v.Available)
		assert.Equal(t, booking.ReasonBlockedByPeer, v.Reason)
	})
}

func TestCheckAvailability_SuitePoolSharedAcrossVariants(t *testing.T) {
	variants := []booking.Variant{
		builder.NewVariantBuilder(booking.KindOfficeSuite).WithStock(6).With(func(b *builder.VariantBuilder) { b.Pax = 4; b.TermMonths = 1 }).BuildDomain(),
		builder.NewVariantBuilder(booking.KindOfficeSuite).WithStock(2).With(func(b *builder.VariantBuilder) { b.Pax = 6; b.TermMonths = 1; b.SortOrder = 1 }).BuildDomain(),
		builder.NewVariantBuilder(booking.KindOfficeSuite).WithStock(2).With(func(b *builder.VariantBuilder) { b.Pax = 8; b.TermMonths = 1; b.SortOrder = 2 }).BuildDomain(),
	}
	engine := booking.NewEngine(booking.NewCatalog(booking.DefaultPolicy(), variants))
	now := at(1, 9, 0)

	var existing []booking.Reservation
	for _, v := range variants {
		for i := 0; i < 2; i++ {
			existing = append(existing, held(v, at(10, 0, 0), tp(at(10, 0, 0).AddDate(0, 1, 0))))
		}
	}

	for _, v := range variants {
		start := at(20, 0, 0)
		verdict, err := engine.CheckAvailability(booking.AvailabilityRequest{
			Kind: v.Kind, Start: start, End: tp(start.AddDate(0, 1, 0)), Quantity: 1,
		}, existing, now)
		require.NoError(t, err)
		assert.False(t, verdict.Available)
		assert.Equal(t, booking.ReasonFullyBooked, verdict.Reason)
	}

	t.Run("day after the terms end is free", func(t *testing.T) {
		start := time.Date(2025, 4, 10, 0, 0, 0, 0, wib)
		verdict, err := engine.CheckAvailability(booking.AvailabilityRequest{
			Kind: booking.KindOfficeSuite, Start: start, End: tp(start.AddDate(0, 1, 0)), Quantity: 6,
		}, existing, now)
		require.NoError(t, err)
		assert.True(t, verdict.Available)
	})
}

func TestCheckAvailability_UnboundedHoldStaysActive(t *testing.T) {
	engine, variants := standardEngine()
	room := builder.VariantOf(variants, booking.KindExclusiveRoom)
	now := at(10, 12, 0)
	existing := []booking.Reservation{held(room, now.Add(-time.Hour), nil)}

	v, err := engine.CheckAvailability(timeReq(booking.KindExclusiveRoom, at(10, 15, 0), at(10, 16, 0), 1), existing, now)
	require.NoError(t, err)
	assert.False(t, v.Available)

	v, err = engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(12, 9, 0), at(12, 10, 0), 1), existing, now)
	require.NoError(t, err)
	assert.Equal(t, booking.ReasonBlockedByPeer, v.Reason)
}

func TestCheckAvailability_Rejections(t *testing.T) {
	engine, _ := standardEngine()
	now := at(10, 10, 0)

	tests := []struct {
		name   string
		req    booking.AvailabilityRequest
		reason booking.Reason
	}{
		{name: "start in the past", req: timeReq(booking.KindSharedDeskPool, at(10, 9, 0), at(10, 11, 0), 1), reason: booking.ReasonPastTime},
		{name: "earlier day", req: timeReq(booking.KindSharedDeskPool, at(9, 13, 0), at(9, 14, 0), 1), reason: booking.ReasonPastTime},
		{name: "before opening", req: timeReq(booking.KindSharedDeskPool, at(11, 7, 30), at(11, 9, 0), 1), reason: booking.ReasonBeforeOpening},
		{name: "nine and a half hours from opening", req: timeReq(booking.KindSharedDeskPool, at(11, 8, 0), at(11, 17, 30), 1), reason: booking.ReasonAfterClosing},
		{name: "runs past midnight", req: timeReq(booking.KindSharedDeskPool, at(11, 16, 0), at(12, 2, 0), 1), reason: booking.ReasonAfterClosing},
		{name: "ends exactly at midnight", req: timeReq(booking.KindExclusiveRoom, at(11, 16, 0), at(12, 0, 0), 1), reason: booking.ReasonAfterClosing},
		{name: "date-sliced start before today", req: booking.AvailabilityRequest{Kind: booking.KindOfficeSuite, Start: at(9, 0, 0), Quantity: 1}, reason: booking.ReasonPastTime},
		{name: "more than capacity", req: timeReq(booking.KindSharedDeskPool, at(11, 9, 0), at(11, 10, 0), 9), reason: booking.ReasonFullyBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := engine.CheckAvailability(tt.req, nil, now)
			require.NoError(t, err)
			assert.False(t, v.Available)
			assert.Equal(t, tt.reason, v.Reason)
			assert.NotEmpty(t, v.Message())
		})
	}

	t.Run("full operating day is accepted", func(t *testing.T) {
		v, err := engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(11, 8, 0), at(11, 17, 0), 1), nil, now)
		require.NoError(t, err)
		assert.True(t, v.Available)
	})

	t.Run("date-sliced booking for today", func(t *testing.T) {
		v, err := engine.CheckAvailability(booking.AvailabilityRequest{Kind: booking.KindOfficeSuite, Start: at(10, 0, 0), Quantity: 1}, nil, now)
		require.NoError(t, err)
		assert.True(t, v.Available)
	})
}

func TestCheckAvailability_Errors(t *testing.T) {
	engine, _ := standardEngine()
	now := at(10, 7, 0)

	_, err := engine.CheckAvailability(timeReq(booking.ResourceKind("sofa"), at(10, 9, 0), at(10, 10, 0), 1), nil, now)
	assert.ErrorIs(t, err, booking.ErrInvalidKind)

	_, err = engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(10, 9, 0), at(10, 10, 0), 0), nil, now)
	assert.ErrorIs(t, err, booking.ErrInvalidQuantity)

	_, err = engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(10, 10, 0), at(10, 9, 0), 1), nil, now)
	assert.ErrorIs(t, err, booking.ErrInvalidWindow)

	_, err = engine.CheckAvailability(booking.AvailabilityRequest{Kind: booking.KindSharedDeskPool, Start: at(10, 9, 0), Quantity: 1}, nil, now)
	assert.ErrorIs(t, err, booking.ErrInvalidWindow)

	empty := booking.NewEngine(booking.NewCatalog(booking.DefaultPolicy(), nil))
	_, err = empty.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(10, 9, 0), at(10, 10, 0), 1), nil, now)
	assert.ErrorIs(t, err, booking.ErrCapacityNotConfigured)
}

func TestCheckAvailability_IgnoresInactiveReservations(t *testing.T) {
	engine, variants := standardEngine()
	room := builder.VariantOf(variants, booking.KindExclusiveRoom)
	now := at(10, 7, 0)
	start, end := at(10, 9, 0), at(10, 10, 0)

	self := held(room, start, &end)
	existing := []booking.Reservation{
		builder.NewReservationBuilder(room, start, &end).Unheld().Build(),
		builder.NewReservationBuilder(room, start, &end).Released().Build(),
		builder.NewReservationBuilder(room, start, &end).With(func(r *booking.Reservation) { r.OrderStatus = booking.OrderCancelled }).Build(),
		self,
	}

	req := timeReq(booking.KindExclusiveRoom, start, end, 1)
	req.ExcludeID = self.ID
	v, err := engine.CheckAvailability(req, existing, now)
	require.NoError(t, err)
	assert.True(t, v.Available)
	assert.Equal(t, 1, v.Remaining)

	req.ExcludeID = uuid.Nil
	v, err = engine.CheckAvailability(req, existing, now)
	require.NoError(t, err)
	assert.False(t, v.Available)
}

func TestCheckAvailability_RemainingNeverNegative(t *testing.T) {
	variants := []booking.Variant{builder.NewVariantBuilder(booking.KindSharedDeskPool).WithStock(2).BuildDomain()}
	engine := booking.NewEngine(booking.NewCatalog(booking.DefaultPolicy(), variants))
	now := at(10, 7, 0)

	existing := []booking.Reservation{
		builder.NewReservationBuilder(variants[0], at(10, 9, 0), tp(at(10, 10, 0))).Quantity(5).Build(),
	}
	v, err := engine.CheckAvailability(timeReq(booking.KindSharedDeskPool, at(10, 9, 0), at(10, 10, 0), 1), existing, now)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Remaining)
	assert.False(t, v.Available)
}
