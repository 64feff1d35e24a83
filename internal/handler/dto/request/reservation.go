package request

import (
	"strings"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	OrderID         uuid.UUID `json:"order_id" binding:"required"`
	OrderRef        string    `json:"order_ref" binding:"required,max=64"`
	CustomerName    string    `json:"customer_name" binding:"omitempty,max=200"`
	VariantID       uuid.UUID `json:"variant_id" binding:"required"`
	Quantity        int       `json:"quantity" binding:"required,min=1,max=10000"`
	Date            string    `json:"date" binding:"required"`
	StartTime       string    `json:"start_time,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty" binding:"omitempty,min=1,max=1440"`
	// Hold drafts and holds in one transaction.
	Hold bool `json:"hold,omitempty"`
}

func (r *CreateReservationRequest) ToInput(loc *time.Location) (commands.DraftInput, error) {
	start, err := startOf(r.Date, r.StartTime, loc)
	if err != nil {
		return commands.DraftInput{}, err
	}
	return commands.DraftInput{
		OrderID:      r.OrderID,
		OrderRef:     strings.TrimSpace(r.OrderRef),
		CustomerName: strings.TrimSpace(r.CustomerName),
		VariantID:    r.VariantID,
		Quantity:     r.Quantity,
		Start:        start,
		Duration:     minutes(r.DurationMinutes),
	}, nil
}

type ReleaseReservationRequest struct {
	Cause string `json:"cause" binding:"omitempty,oneof=cancelled expired admin"`
}

// ReleaseCause defaults to a customer cancellation.
func (r *ReleaseReservationRequest) ReleaseCause() booking.ReleaseCause {
	if r.Cause == "" {
		return booking.ReleaseCancelled
	}
	return booking.ReleaseCause(r.Cause)
}
