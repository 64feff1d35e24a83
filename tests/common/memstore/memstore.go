//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Transactions are
// serialized and applied on success only.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	variants     []booking.Variant
	reservations map[uuid.UUID]booking.Reservation

	lockCalls [][]booking.ResourceKind
	// BeforeCommit runs inside Within after fn succeeds.
	BeforeCommit func()
}

func New(variants ...booking.Variant) *Store {
	return &Store{
		variants:     variants,
		reservations: make(map[uuid.UUID]booking.Reservation),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, data: s.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if s.BeforeCommit != nil {
		s.BeforeCommit()
	}
	s.reservations = tx.data
	s.lockCalls = append(s.lockCalls, tx.locks...)
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memReads{store: s, data: s.reservations})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// Put stores r as-is, bypassing the lifecycle.
func (s *Store) Put(r booking.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID] = r
}

func (s *Store) Get(id uuid.UUID) (booking.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	return r, ok
}

func (s *Store) All() []booking.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedValues(s.reservations)
}

func (s *Store) LockCalls() [][]booking.ResourceKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]booking.ResourceKind(nil), s.lockCalls...)
}

func (s *Store) clone() map[uuid.UUID]booking.Reservation {
	out := make(map[uuid.UUID]booking.Reservation, len(s.reservations))
	for k, v := range s.reservations {
		out[k] = v
	}
	return out
}

type memTx struct {
	store *Store
	data  map[uuid.UUID]booking.Reservation
	locks [][]booking.ResourceKind
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &memRepo{tx: t}
}

func (t *memTx) Reads() shared.CommandReads {
	return &memReads{store: t.store, data: t.data}
}

type memRepo struct {
	tx *memTx
}

func (r *memRepo) Create(_ context.Context, res *booking.Reservation) error {
	if _, ok := r.tx.data[res.ID]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.data[res.ID] = *res
	return nil
}

func (r *memRepo) LockKinds(_ context.Context, kinds []booking.ResourceKind) error {
	r.tx.locks = append(r.tx.locks, append([]booking.ResourceKind(nil), kinds...))
	return nil
}

func (r *memRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	res, ok := r.tx.data[id]
	if !ok {
		return nil, notFound()
	}
	return &res, nil
}

func (r *memRepo) MarkHeld(_ context.Context, id uuid.UUID, at time.Time) error {
	res, ok := r.tx.data[id]
	if !ok {
		return notFound()
	}
	if res.Released || res.OrderStatus == booking.OrderCancelled {
		return infra.WrapRepoErr("reservation is no longer holdable", nil, infra.KindConflict)
	}
	res.Held = true
	res.HeldAt = &at
	res.UpdatedAt = at
	r.tx.data[id] = res
	return nil
}

func (r *memRepo) MarkReleased(_ context.Context, id uuid.UUID, cause booking.ReleaseCause, at time.Time) (bool, error) {
	res, ok := r.tx.data[id]
	if !ok {
		return false, notFound()
	}
	if res.Released {
		return false, nil
	}
	res.Released = true
	res.ReleaseCause = &cause
	res.ReleasedAt = &at
	res.UpdatedAt = at
	res.OrderStatus = booking.OrderCancelled
	r.tx.data[id] = res
	return true, nil
}

func (r *memRepo) CompleteOrder(_ context.Context, orderID uuid.UUID, at time.Time) (int64, error) {
	var n int64
	for id, res := range r.tx.data {
		if res.OrderID != orderID || !res.Held || res.Released || res.OrderStatus != booking.OrderPending {
			continue
		}
		res.OrderStatus = booking.OrderCompleted
		res.UpdatedAt = at
		r.tx.data[id] = res
		n++
	}
	return n, nil
}

func (r *memRepo) StaleUnpaid(_ context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, res := range sortedValues(r.tx.data) {
		if !res.Held || res.Released || res.OrderStatus != booking.OrderPending || !res.CreatedAt.Before(createdBefore) {
			continue
		}
		ids = append(ids, res.ID)
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

type memReads struct {
	store *Store
	data  map[uuid.UUID]booking.Reservation
}

func (r *memReads) Variants(_ context.Context) ([]booking.Variant, error) {
	return append([]booking.Variant(nil), r.store.variants...), nil
}

func (r *memReads) ReservationByID(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	res, ok := r.data[id]
	if !ok {
		return nil, notFound()
	}
	return &res, nil
}

func (r *memReads) ActiveReservations(_ context.Context, kinds []booking.ResourceKind, from time.Time, to *time.Time) ([]booking.Reservation, error) {
	var out []booking.Reservation
	for _, res := range sortedValues(r.data) {
		if !res.CountsTowardCapacity() || !containsKind(kinds, res.Kind) {
			continue
		}
		if !booking.Overlaps(from, to, res.WindowStart, res.WindowEnd) {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

// lockedReads serves reads outside a transaction.
type lockedReads struct {
	store *Store
}

func (r *lockedReads) Variants(ctx context.Context) ([]booking.Variant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&memReads{store: r.store, data: r.store.reservations}).Variants(ctx)
}

func (r *lockedReads) ReservationByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&memReads{store: r.store, data: r.store.reservations}).ReservationByID(ctx, id)
}

func (r *lockedReads) ActiveReservations(ctx context.Context, kinds []booking.ResourceKind, from time.Time, to *time.Time) ([]booking.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&memReads{store: r.store, data: r.store.reservations}).ActiveReservations(ctx, kinds, from, to)
}

func notFound() error {
	return infra.WrapRepoErr("reservation not found", booking.ErrReservationNotFound, infra.KindNotFound)
}

func containsKind(kinds []booking.ResourceKind, k booking.ResourceKind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}

func sortedValues(m map[uuid.UUID]booking.Reservation) []booking.Reservation {
	out := make([]booking.Reservation, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}
