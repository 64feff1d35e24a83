package response

import (
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID  `json:"id"`
	OrderID      uuid.UUID  `json:"order_id"`
	OrderRef     string     `json:"order_ref"`
	CustomerName string     `json:"customer_name"`
	VariantID    uuid.UUID  `json:"variant_id"`
	Kind         string     `json:"kind"`
	Quantity     int        `json:"quantity"`
	WindowStart  time.Time  `json:"window_start"`
	WindowEnd    *time.Time `json:"window_end,omitempty"`
	Held         bool       `json:"held"`
	Released     bool       `json:"released"`
	OrderStatus  string     `json:"order_status"`
	Cause        *string    `json:"release_cause,omitempty"`
	HeldAt       *time.Time `json:"held_at,omitempty"`
	ReleasedAt   *time.Time `json:"released_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	if v == nil {
		return nil, nil
	}
	var res ReservationResponse
	// Same-named fields copy over; named string types convert to string.
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "map reservation response")
	}
	if v.ReleaseCause != nil {
		cause := string(*v.ReleaseCause)
		res.Cause = &cause
	}
	return &res, nil
}

func FromReservation(r *booking.Reservation, loc *time.Location) (*ReservationResponse, error) {
	if r == nil {
		return nil, nil
	}
	return FromReservationView(queries.NewReservationView(r, loc))
}

type HoldResponse struct {
	Held        bool                 `json:"held"`
	AlreadyHeld bool                 `json:"already_held,omitempty"`
	Remaining   int                  `json:"remaining"`
	Reason      string               `json:"reason"`
	Message     string               `json:"message"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

func FromHoldResult(r *commands.HoldResult, loc *time.Location) (*HoldResponse, error) {
	res, err := FromReservation(r.Reservation, loc)
	if err != nil {
		return nil, err
	}
	return &HoldResponse{
		Held:        r.Held,
		AlreadyHeld: r.AlreadyHeld,
		Remaining:   r.Verdict.Remaining,
		Reason:      string(r.Verdict.Reason),
		Message:     r.Message(),
		Reservation: res,
	}, nil
}

type ReleaseResponse struct {
	Changed     bool                 `json:"changed"`
	Reservation *ReservationResponse `json:"reservation"`
}

func FromReleaseResult(r *commands.ReleaseResult, loc *time.Location) (*ReleaseResponse, error) {
	res, err := FromReservation(r.Reservation, loc)
	if err != nil {
		return nil, err
	}
	return &ReleaseResponse{Changed: r.Changed, Reservation: res}, nil
}

type CompleteOrderResponse struct {
	OrderID   uuid.UUID `json:"order_id"`
	Completed int64     `json:"completed"`
}

type ExpireResponse struct {
	Scanned  int       `json:"scanned"`
	Released int       `json:"released"`
	Cutoff   time.Time `json:"cutoff"`
}

func FromExpireResult(r *commands.ExpireResult) (*ExpireResponse, error) {
	var res ExpireResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, errs.Wrap(err, "map expire response")
	}
	return &res, nil
}
