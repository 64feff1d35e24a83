package response

import (
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RosterRowResponse struct {
	SubType       string     `json:"sub_type"`
	CapacityLabel string     `json:"capacity_label"`
	Occupancy     string     `json:"occupancy"`
	OrderRef      string     `json:"order_ref,omitempty"`
	CustomerName  string     `json:"customer_name,omitempty"`
	CheckIn       *time.Time `json:"check_in,omitempty"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
}

type RosterGroupResponse struct {
	RoomLabel string              `json:"room_label"`
	Date      string              `json:"date"`
	Type      string              `json:"type"`
	Overflow  int                 `json:"overflow,omitempty"`
	Rows      []RosterRowResponse `json:"rows"`
}

type RosterResponse struct {
	Date   string                `json:"date"`
	Groups []RosterGroupResponse `json:"groups"`
}

func FromRosterView(v *queries.RosterView) (*RosterResponse, error) {
	res := &RosterResponse{
		Date:   v.Date.Format(time.DateOnly),
		Groups: make([]RosterGroupResponse, 0, len(v.Groups)),
	}
	for _, g := range v.Groups {
		group, err := fromRosterGroup(g)
		if err != nil {
			return nil, err
		}
		res.Groups = append(res.Groups, group)
	}
	return res, nil
}

func fromRosterGroup(g booking.RosterGroup) (RosterGroupResponse, error) {
	rows := make([]RosterRowResponse, 0, len(g.Rows))
	if err := copier.Copy(&rows, g.Rows); err != nil {
		return RosterGroupResponse{}, errs.Wrapf(err, "map roster group %s", g.Type)
	}
	return RosterGroupResponse{
		RoomLabel: g.RoomLabel,
		Date:      g.Date.Format(time.DateOnly),
		Type:      string(g.Type),
		Overflow:  g.Overflow,
		Rows:      rows,
	}, nil
}
