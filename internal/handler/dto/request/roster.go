package request

import (
	"time"

	"workspace-booking/internal/domain/booking"
)

type RosterQuery struct {
	Date  string `form:"date" binding:"required"`
	Group string `form:"group" binding:"omitempty,oneof=coworking office_suite"`
}

func (q *RosterQuery) Parse(loc *time.Location) (time.Time, *booking.RosterGroupType, error) {
	date, err := ParseDate(q.Date, loc)
	if err != nil {
		return time.Time{}, nil, err
	}
	if q.Group == "" {
		return date, nil, nil
	}
	group, err := booking.ParseRosterGroup(q.Group)
	if err != nil {
		return time.Time{}, nil, err
	}
	return date, &group, nil
}
