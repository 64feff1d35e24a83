//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type boolRow struct {
	value bool
	err   error
}

func (r boolRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.value
	return nil
}

func TestLockKinds(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, lockKindSQL, []interface{}{advisoryNamespace, int32(1)}).
		Return(pgconn.NewCommandTag("SELECT 1"), nil).Once()
	db.On("Exec", mock.Anything, lockKindSQL, []interface{}{advisoryNamespace, int32(2)}).
		Return(pgconn.NewCommandTag("SELECT 1"), nil).Once()

	repo := NewReservationRepository(db)
	err := repo.LockKinds(context.Background(), []booking.ResourceKind{booking.KindSharedDeskPool, booking.KindExclusiveRoom})

	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestMarkReleased(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		tag         string
		execErr     error
		exists      *boolRow
		wantChanged bool
		wantKind    infra.RepositoryErrorKind
	}{
		{
			name:        "first release flips the flag",
			tag:         "UPDATE 1",
			wantChanged: true,
		},
		{
			name:        "already released is a no-op",
			tag:         "UPDATE 0",
			exists:      &boolRow{value: true},
			wantChanged: false,
		},
		{
			name:     "missing reservation",
			tag:      "UPDATE 0",
			exists:   &boolRow{value: false},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			execErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, markReleasedSQL, []interface{}{id, string(booking.ReleaseCancelled), at}).
				Return(pgconn.NewCommandTag(tt.tag), tt.execErr)
			if tt.exists != nil {
				db.On("QueryRow", mock.Anything, reservationExistsSQL, []interface{}{id}).Return(*tt.exists)
			}

			repo := NewReservationRepository(db)
			changed, err := repo.MarkReleased(context.Background(), id, booking.ReleaseCancelled, at)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantChanged, changed)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestMarkHeld_NoRowsIsConflict(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	db := new(MockDBTX)
	db.On("Exec", mock.Anything, markHeldSQL, []interface{}{id, at}).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	err := NewReservationRepository(db).MarkHeld(context.Background(), id, at)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
}

func TestCreate_UniqueViolation(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, insertReservationSQL, mock.Anything).
		Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"})

	res := &booking.Reservation{ID: uuid.New(), Kind: booking.KindExclusiveRoom, Quantity: 1, OrderStatus: booking.OrderPending}
	err := NewReservationRepository(db).Create(context.Background(), res)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestCompleteOrder(t *testing.T) {
	orderID := uuid.New()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	db := new(MockDBTX)
	db.On("Exec", mock.Anything, completeOrderSQL, []interface{}{orderID, at}).Return(pgconn.NewCommandTag("UPDATE 2"), nil)

	n, err := NewReservationRepository(db).CompleteOrder(context.Background(), orderID, at)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
