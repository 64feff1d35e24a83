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

func draftSpec(v booking.Variant, start time.Time, d time.Duration) booking.DraftSpec {
	return booking.DraftSpec{
		OrderID:      uuid.New(),
		OrderRef:     "ORD-77",
		CustomerName: "Rudi",
		Variant:      v,
		Quantity:     1,
		Start:        start,
		Duration:     d,
	}
}

func TestNewDraft(t *testing.T) {
	now := at(10, 7, 0)
	variants := builder.StandardCatalog()

	t.Run("starts pending and unheld", func(t *testing.T) {
		res, err := booking.NewDraft(draftSpec(builder.VariantOf(variants, booking.KindSharedDeskPool), at(10, 9, 0), 90*time.Minute), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID)
		assert.False(t, res.Held)
		assert.False(t, res.Released)
		assert.Equal(t, booking.OrderPending, res.OrderStatus)
		assert.Equal(t, at(10, 10, 30), *res.WindowEnd)
		assert.Equal(t, now, res.CreatedAt)
		assert.False(t, res.CountsTowardCapacity())
	})

	t.Run("time-sliced window may end exactly at midnight", func(t *testing.T) {
		res, err := booking.NewDraft(draftSpec(builder.VariantOf(variants, booking.KindSharedDeskPool), at(10, 22, 0), 2*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, at(11, 0, 0), *res.WindowEnd)
	})

	t.Run("subscription without term cannot be drafted", func(t *testing.T) {
		v := builder.NewVariantBuilder(booking.KindVirtualSubscription).BuildDomain()
		res, err := booking.NewDraft(draftSpec(v, at(15, 10, 0), 0), now)
		assert.ErrorIs(t, err, booking.ErrTermNotConfigured)
		assert.Nil(t, res)
	})

	t.Run("subscription window spans its term", func(t *testing.T) {
		res, err := booking.NewDraft(draftSpec(builder.VariantOf(variants, booking.KindVirtualSubscription), at(15, 10, 0), 0), now)
		require.NoError(t, err)
		assert.Equal(t, at(15, 0, 0), res.WindowStart)
		require.NotNil(t, res.WindowEnd)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, wib), *res.WindowEnd)
	})

	tests := []struct {
		name  string
		spec  booking.DraftSpec
		errIs error
	}{
		{name: "inactive variant", spec: draftSpec(builder.NewVariantBuilder(booking.KindSharedDeskPool).AsInactive().BuildDomain(), at(10, 9, 0), time.Hour), errIs: booking.ErrVariantInactive},
		{name: "crosses midnight", spec: draftSpec(builder.VariantOf(variants, booking.KindSharedDeskPool), at(10, 23, 0), 2*time.Hour), errIs: booking.ErrInvalidWindow},
		{name: "negative duration", spec: draftSpec(builder.VariantOf(variants, booking.KindExclusiveRoom), at(10, 9, 0), -time.Hour), errIs: booking.ErrInvalidWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewDraft(tt.spec, now)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}

	t.Run("zero quantity", func(t *testing.T) {
		spec := draftSpec(builder.VariantOf(variants, booking.KindSharedDeskPool), at(10, 9, 0), time.Hour)
		spec.Quantity = 0
		_, err := booking.NewDraft(spec, now)
		assert.ErrorIs(t, err, booking.ErrInvalidQuantity)
	})
}

func TestReservationLifecycleRules(t *testing.T) {
	desk := builder.NewVariantBuilder(booking.KindSharedDeskPool).BuildDomain()
	now := at(10, 12, 0)
	start, end := at(12, 9, 0), at(12, 10, 0)

	active := builder.NewReservationBuilder(desk, start, &end).CreatedAt(now.Add(-25 * time.Hour)).Build()
	assert.True(t, active.CountsTowardCapacity())
	assert.NoError(t, active.CanHold())
	assert.True(t, active.IsStaleUnpaid(now, 24*time.Hour))
	assert.False(t, active.IsStaleUnpaid(now, 48*time.Hour))

	released := builder.NewReservationBuilder(desk, start, &end).Released().Build()
	assert.False(t, released.CountsTowardCapacity())
	assert.ErrorIs(t, released.CanHold(), booking.ErrReservationReleased)

	completed := builder.NewReservationBuilder(desk, start, &end).CreatedAt(now.Add(-72 * time.Hour)).
		With(func(r *booking.Reservation) { r.OrderStatus = booking.OrderCompleted }).Build()
	assert.True(t, completed.CountsTowardCapacity())
	assert.False(t, completed.IsStaleUnpaid(now, 24*time.Hour))

	draft := builder.NewReservationBuilder(desk, start, &end).Unheld().CreatedAt(now.Add(-72 * time.Hour)).Build()
	assert.False(t, draft.CountsTowardCapacity())
	assert.False(t, draft.IsStaleUnpaid(now, 24*time.Hour))
}

func TestReleaseCause(t *testing.T) {
	assert.True(t, booking.ReleaseExpired.IsValid())
	assert.False(t, booking.ReleaseCause("refund").IsValid())
	assert.True(t, booking.OrderCompleted.IsValid())
	assert.False(t, booking.OrderStatus("paid").IsValid())
}
