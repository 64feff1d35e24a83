package request

import (
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	Kind            string `form:"kind" binding:"omitempty,oneof=shared_desk_pool exclusive_room office_suite virtual_subscription"`
	VariantID       string `form:"variant_id" binding:"omitempty,uuid"`
	Date            string `form:"date" binding:"required"`
	StartTime       string `form:"start_time"`
	DurationMinutes int    `form:"duration_minutes" binding:"omitempty,min=1,max=1440"`
	Quantity        int    `form:"quantity,default=1" binding:"min=1,max=10000"`
}

func (q *AvailabilityQuery) ToInput(loc *time.Location) (queries.AvailabilityInput, error) {
	in := queries.AvailabilityInput{
		Duration: minutes(q.DurationMinutes),
		Quantity: q.Quantity,
	}

	if q.VariantID != "" {
		id, err := uuid.Parse(q.VariantID)
		if err != nil {
			return queries.AvailabilityInput{}, err
		}
		in.VariantID = &id
	} else {
		kind, err := booking.ParseKind(q.Kind)
		if err != nil {
			return queries.AvailabilityInput{}, err
		}
		in.Kind = kind
		if kind.Slicing() == booking.TimeSliced && q.StartTime == "" {
			return queries.AvailabilityInput{}, ErrStartTimeRequired
		}
	}

	start, err := startOf(q.Date, q.StartTime, loc)
	if err != nil {
		return queries.AvailabilityInput{}, err
	}
	in.Start = start
	return in, nil
}
