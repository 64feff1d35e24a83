//go:build unit

package response_test

import (
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*60*60)

func TestFromAvailabilityView(t *testing.T) {
	start := time.Date(2026, 10, 20, 16, 0, 0, 0, wib)
	end := start.Add(10 * time.Hour)

	got, err := response.FromAvailabilityView(&queries.AvailabilityView{
		Kind: booking.KindSharedDeskPool, Start: start, End: &end, Quantity: 1,
		Capacity: 8, Reason: booking.ReasonAfterClosing, Message: booking.ReasonAfterClosing.Message(),
	})
	require.NoError(t, err)
	assert.Equal(t, "shared_desk_pool", got.Kind)
	assert.Equal(t, "AfterClosing", got.Reason)
	assert.False(t, got.Available)
	assert.Equal(t, end, *got.End)

	_, err = response.FromAvailabilityView(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
}

func TestFromReservation(t *testing.T) {
	cause := booking.ReleaseAdmin
	r := &booking.Reservation{
		ID:           uuid.New(),
		OrderID:      uuid.New(),
		OrderRef:     "ORD-1",
		Kind:         booking.KindExclusiveRoom,
		Quantity:     1,
		WindowStart:  time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		Released:     true,
		OrderStatus:  booking.OrderCancelled,
		ReleaseCause: &cause,
	}

	got, err := response.FromReservation(r, wib)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "exclusive_room", got.Kind)
	assert.Equal(t, "cancelled", got.OrderStatus)
	require.NotNil(t, got.Cause)
	assert.Equal(t, "admin", *got.Cause)

	none, err := response.FromReservation(nil, wib)
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestFromExpireResult(t *testing.T) {
	got, err := response.FromExpireResult(&commands.ExpireResult{Scanned: 3, Released: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Scanned)
	assert.Equal(t, 2, got.Released)

	_, err = response.FromExpireResult(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
}
