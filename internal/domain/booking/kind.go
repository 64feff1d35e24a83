package booking

import "errors"

var (
	ErrInvalidKind           = errors.New("invalid resource kind")
	ErrInvalidWindow         = errors.New("invalid booking window")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrCapacityNotConfigured = errors.New("capacity not configured for resource kind")
	ErrTermNotConfigured     = errors.New("date-sliced variant has no term")
	ErrVariantNotFound       = errors.New("variant not found")
	ErrVariantInactive       = errors.New("variant is not active")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrReservationReleased   = errors.New("reservation is already released")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
)

type ResourceKind string

const (
	KindSharedDeskPool      ResourceKind = "shared_desk_pool"
	KindExclusiveRoom       ResourceKind = "exclusive_room"
	KindOfficeSuite         ResourceKind = "office_suite"
	KindVirtualSubscription ResourceKind = "virtual_subscription"
)

// Slicing tells whether a kind is booked by wall-clock time or by calendar date.
type Slicing int

const (
	TimeSliced Slicing = iota + 1
	DateSliced
)

func AllKinds() []ResourceKind {
	return []ResourceKind{KindSharedDeskPool, KindExclusiveRoom, KindOfficeSuite, KindVirtualSubscription}
}

func ParseKind(s string) (ResourceKind, error) {
	k := ResourceKind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k ResourceKind) String() string {
	return string(k)
}

func (k ResourceKind) IsValid() bool {
	switch k {
	case KindSharedDeskPool, KindExclusiveRoom, KindOfficeSuite, KindVirtualSubscription:
		return true
	default:
		return false
	}
}

func (k ResourceKind) Slicing() Slicing {
	switch k {
	case KindSharedDeskPool, KindExclusiveRoom:
		return TimeSliced
	case KindOfficeSuite, KindVirtualSubscription:
		return DateSliced
	default:
		return 0
	}
}

// IsPhysical reports whether the kind occupies a room shown on the roster.
func (k ResourceKind) IsPhysical() bool {
	switch k {
	case KindSharedDeskPool, KindExclusiveRoom, KindOfficeSuite:
		return true
	default:
		return false
	}
}

// ExclusionPeersOf returns the kinds that share physical space with k.
// An active reservation of a peer zeroes k's capacity for overlapping windows.
func ExclusionPeersOf(k ResourceKind) []ResourceKind {
	switch k {
	case KindSharedDeskPool:
		return []ResourceKind{KindExclusiveRoom}
	case KindExclusiveRoom:
		return []ResourceKind{KindSharedDeskPool}
	default:
		return nil
	}
}

// LockOrdinal is a stable per-kind key used for transaction-scoped locks.
func (k ResourceKind) LockOrdinal() int64 {
	switch k {
	case KindSharedDeskPool:
		return 1
	case KindExclusiveRoom:
		return 2
	case KindOfficeSuite:
		return 3
	case KindVirtualSubscription:
		return 4
	default:
		return 0
	}
}
